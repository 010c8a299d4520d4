package home

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps the names offered after a failed lookup.
const maxSuggestions = 3

// SiblingNames returns the sorted directory names of all sibling checkouts in root.
func SiblingNames(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && Classify(filepath.Join(root, e.Name())) == KindSibling {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Suggest returns sibling names in root that fuzzily match query, best first.
func Suggest(root, query string) []string {
	names := SiblingNames(root)
	if len(names) == 0 || query == "" {
		return nil
	}

	matches := fuzzy.Find(query, names)
	var out []string
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
