package matcher

import (
	"github.com/sahilm/fuzzy"

	"github.com/kent-titlemap/internal/reference"
)

// Suggest returns up to limit reference titles matching the partial query
// by fuzzy subsequence, best first. Used for typeahead on the title field.
func Suggest(table *reference.Table, partial string, limit int) []string {
	if partial == "" || limit <= 0 {
		return nil
	}

	results := fuzzy.Find(partial, table.Titles())

	var titles []string
	seen := make(map[string]bool)
	for _, match := range results {
		if seen[match.Str] {
			continue
		}
		seen[match.Str] = true
		titles = append(titles, match.Str)
		if len(titles) == limit {
			break
		}
	}
	return titles
}
