package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// LoadLines reads a text catalog with one item per line. A tab separates the
// display name from an optional detail column. Empty lines are ignored.
func LoadLines(path string) (*Catalog[Item], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadLines(f, path)
}

// ReadLines is LoadLines over an arbitrary reader; source labels the items.
func ReadLines(r io.Reader, source string) (*Catalog[Item], error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog %s: %w", source, err)
	}
	text, err := decodeText(content)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", source, err)
	}

	lines := strings.Split(text, "\n")
	c := New[Item](len(lines))
	for idx, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		// Empty lines are separators, not entries. Whitespace-only lines
		// still become entries whose name fails with ErrEmptyName.
		if line == "" {
			continue
		}

		rawName, detail, _ := strings.Cut(line, "\t")
		lineNo := idx + 1
		item := Item{
			Name:   norm.NFC.String(strings.TrimSpace(rawName)),
			Detail: strings.TrimSpace(detail),
			Source: fmt.Sprintf("%s:%d", source, lineNo),
		}
		c.Add(item, item.Source, lineName(rawName))
	}
	return c, nil
}

func lineName(raw string) NameFunc {
	return func() (string, error) {
		if !utf8.ValidString(raw) {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, raw)
		}
		name := strings.TrimSpace(raw)
		if name == "" {
			return "", ErrEmptyName
		}
		return norm.NFC.String(name), nil
	}
}
