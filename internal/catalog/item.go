package catalog

// Item is the handle the picker shows and prints.
type Item struct {
	Name   string // display name as loaded, not folded
	Detail string // optional secondary text
	Source string // where the item came from, e.g. "items.txt:12"
}

func (it Item) String() string {
	if it.Source == "" {
		return it.Name
	}
	return it.Name + " (" + it.Source + ")"
}

// Field returns the value selected by field: "detail", "source", or the name
// for anything else. Empty detail/source fall back to the name.
func (it Item) Field(field string) string {
	switch field {
	case "detail":
		if it.Detail != "" {
			return it.Detail
		}
	case "source":
		if it.Source != "" {
			return it.Source
		}
	}
	return it.Name
}
