package recipe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Placeholder is an easyconfig template with substitution tokens
type Placeholder struct {
	Name Name
	Path string
}

// ListPlaceholders returns the placeholder easyconfigs in dir, sorted by file name.
// Files that don't follow the easyconfig naming convention are skipped.
// A missing directory yields no placeholders.
func ListPlaceholders(dir string) ([]Placeholder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read placeholder directory %s: %w", dir, err)
	}

	var placeholders []Placeholder
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name, err := ParseName(entry.Name())
		if err != nil {
			continue
		}
		placeholders = append(placeholders, Placeholder{
			Name: name,
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(placeholders, func(i, j int) bool {
		return placeholders[i].Name.String() < placeholders[j].Name.String()
	})
	return placeholders, nil
}

// findPlaceholder returns the path of the placeholder called file in dir, or "" if there is none
func findPlaceholder(dir, file string) (string, error) {
	path := filepath.Join(dir, file)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to check placeholder %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", nil
	}
	return path, nil
}
