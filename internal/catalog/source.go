package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format names a catalog file layout.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatLines Format = "lines"
	FormatDir   Format = "dir"
	FormatJSON  Format = "json"
)

// ParseFormat maps a config string onto a Format; "" means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatLines, FormatDir, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Source describes where a catalog comes from. Path "-" reads lines from
// standard input.
type Source struct {
	Path          string
	Format        Format
	NameField     string
	DetailField   string
	IncludeHidden bool
	Recursive     bool
}

// Load builds the catalog described by src.
func Load(src Source) (*Catalog[Item], error) {
	format, err := src.resolveFormat()
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatLines:
		if src.Path == "-" {
			return ReadLines(os.Stdin, "stdin")
		}
		return LoadLines(src.Path)
	case FormatDir:
		return LoadDir(src.Path, DirOptions{IncludeHidden: src.IncludeHidden, Recursive: src.Recursive})
	case FormatJSON:
		return LoadJSON(src.Path, JSONOptions{NameField: src.NameField, DetailField: src.DetailField})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func (src Source) resolveFormat() (Format, error) {
	format, err := ParseFormat(string(src.Format))
	if err != nil {
		return "", err
	}
	if format != FormatAuto {
		return format, nil
	}
	if src.Path == "-" {
		return FormatLines, nil
	}
	info, err := os.Stat(src.Path)
	if err != nil {
		return "", fmt.Errorf("cannot open catalog %s: %w", src.Path, err)
	}
	if info.IsDir() {
		return FormatDir, nil
	}
	if strings.EqualFold(filepath.Ext(src.Path), ".json") {
		return FormatJSON, nil
	}
	return FormatLines, nil
}
