package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"
)

const DefaultNameField = "name"

// JSONOptions selects which fields of each array element become the name and
// detail. Fields use gjson path syntax, e.g. "display.name".
type JSONOptions struct {
	NameField   string
	DetailField string
}

// LoadJSON reads a catalog stored as a JSON array. Elements may be objects
// (the name comes from NameField) or bare strings.
func LoadJSON(path string, opts JSONOptions) (*Catalog[Item], error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog %s: %w", path, err)
	}
	return ParseJSON(content, path, opts)
}

// ParseJSON is LoadJSON over in-memory content; source labels the items.
func ParseJSON(content []byte, source string, opts JSONOptions) (*Catalog[Item], error) {
	if !gjson.ValidBytes(content) {
		return nil, fmt.Errorf("catalog %s: invalid JSON", source)
	}
	root := gjson.ParseBytes(content)
	if !root.IsArray() {
		return nil, fmt.Errorf("catalog %s: top-level value must be an array", source)
	}

	nameField := opts.NameField
	if nameField == "" {
		nameField = DefaultNameField
	}

	elements := root.Array()
	c := New[Item](len(elements))
	for idx, elem := range elements {
		src := fmt.Sprintf("%s[%d]", source, idx)
		name := jsonName(elem, nameField)
		item := Item{Source: src}
		if raw, err := name(); err == nil {
			item.Name = raw
		}
		if opts.DetailField != "" && elem.IsObject() {
			item.Detail = elem.Get(opts.DetailField).String()
		}
		c.Add(item, src, name)
	}
	return c, nil
}

func jsonName(elem gjson.Result, field string) NameFunc {
	return func() (string, error) {
		value := elem
		if elem.IsObject() {
			value = elem.Get(field)
			if !value.Exists() {
				return "", fmt.Errorf("%w: %q", ErrMissingField, field)
			}
		}
		if value.Type != gjson.String {
			return "", fmt.Errorf("%w: %s is %s, not a string", ErrInvalidName, field, value.Type)
		}
		name := strings.TrimSpace(value.String())
		if name == "" {
			return "", ErrEmptyName
		}
		return norm.NFC.String(name), nil
	}
}
