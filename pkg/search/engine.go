// Package search implements the picker's keyword filtering: the same
// matching the emoji grid re-runs on every keystroke in the search field.
package search

import (
	"sort"
	"strings"

	"github.com/emopick/emopick-cli/pkg/emoji"
)

// Matches reports whether an emoji matches the query. Matching is a
// case-insensitive substring check over id, name and keywords. An empty
// query matches everything.
func Matches(e emoji.Emoji, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(e.ID), query) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Name), query) {
		return true
	}
	for _, kw := range e.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}

// Filter returns the emojis from data matching query, in category order.
// Exact id or name matches rank before substring matches; within a rank the
// category order is preserved.
func Filter(data *emoji.Data, query string) []emoji.Emoji {
	var results []emoji.Emoji
	for _, cat := range data.Categories {
		for _, id := range cat.EmojiIDs {
			e, ok := data.Emojis[id]
			if !ok {
				continue
			}
			if Matches(e, query) {
				results = append(results, e)
			}
		}
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		sort.SliceStable(results, func(i, j int) bool {
			return rank(results[i], query) < rank(results[j], query)
		})
	}

	return results
}

func rank(e emoji.Emoji, query string) int {
	if strings.EqualFold(e.ID, query) || strings.EqualFold(e.Name, query) {
		return 0
	}
	if strings.HasPrefix(strings.ToLower(e.ID), query) {
		return 1
	}
	return 2
}
