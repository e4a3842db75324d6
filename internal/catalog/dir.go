package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DirOptions controls LoadDir.
type DirOptions struct {
	IncludeHidden bool
	// Recursive walks subdirectories; names become slash-separated paths
	// relative to the root.
	Recursive bool
}

// LoadDir builds a catalog from the entries of a directory, in the order the
// filesystem walk yields them (lexical).
func LoadDir(root string, opts DirOptions) (*Catalog[Item], error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog %s: not a directory", root)
	}

	c := New[Item](64)
	if !opts.Recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", root, err)
		}
		for _, e := range entries {
			fullPath := filepath.Join(root, e.Name())
			if skipDirEntry(fullPath, e.Name(), opts) {
				continue
			}
			addDirEntry(c, e.Name(), fullPath, e)
		}
		return c, nil
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable subtrees shrink the catalog instead of failing it.
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			if path == root {
				return walkErr
			}
			return nil
		}
		if path == root {
			return nil
		}
		if skipDirEntry(path, d.Name(), opts) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		addDirEntry(c, filepath.ToSlash(rel), path, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot walk directory %s: %w", root, err)
	}
	return c, nil
}

func skipDirEntry(fullPath, name string, opts DirOptions) bool {
	if isProtected(fullPath, name) {
		return true
	}
	return !opts.IncludeHidden && isHidden(fullPath, name)
}

func addDirEntry(c *Catalog[Item], rawName, fullPath string, d fs.DirEntry) {
	detail := "file"
	if d.IsDir() {
		detail = "dir"
	} else if d.Type()&fs.ModeSymlink != 0 {
		detail = "symlink"
	}
	item := Item{
		Name:   norm.NFC.String(rawName),
		Detail: detail,
		Source: fullPath,
	}
	c.Add(item, fullPath, func() (string, error) {
		if !utf8.ValidString(rawName) {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, rawName)
		}
		return norm.NFC.String(rawName), nil
	})
}
