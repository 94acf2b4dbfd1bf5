package search

import (
	"testing"

	"github.com/emopick/emopick-cli/pkg/emoji"
)

func testData() *emoji.Data {
	return &emoji.Data{
		Categories: []emoji.Category{
			{ID: "smileys", Name: "Smileys", EmojiIDs: []string{"grinning", "joy"}},
			{ID: "symbols", Name: "Symbols", EmojiIDs: []string{"fire", "firecracker"}},
		},
		Emojis: map[string]emoji.Emoji{
			"grinning":    {ID: "grinning", Name: "Grinning Face", Native: "😀", Keywords: []string{"smile", "happy"}},
			"joy":         {ID: "joy", Name: "Face with Tears of Joy", Native: "😂", Keywords: []string{"laugh", "lol"}},
			"fire":        {ID: "fire", Name: "Fire", Native: "🔥", Keywords: []string{"hot", "lit"}},
			"firecracker": {ID: "firecracker", Name: "Firecracker", Native: "🧨", Keywords: []string{"bang"}},
		},
	}
}

func TestMatches(t *testing.T) {
	e := emoji.Emoji{ID: "thumbsup", Name: "Thumbs Up", Keywords: []string{"+1", "approve"}}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query matches", query: "", want: true},
		{name: "id substring", query: "thumb", want: true},
		{name: "name case-insensitive", query: "THUMBS", want: true},
		{name: "keyword", query: "approve", want: true},
		{name: "keyword symbol", query: "+1", want: true},
		{name: "whitespace trimmed", query: "  thumb  ", want: true},
		{name: "no match", query: "zebra", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(e, tt.query); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterEmptyQueryReturnsAllInCategoryOrder(t *testing.T) {
	results := Filter(testData(), "")

	want := []string{"grinning", "joy", "fire", "firecracker"}
	if len(results) != len(want) {
		t.Fatalf("Expected %d results, got %d", len(want), len(results))
	}
	for i, id := range want {
		if results[i].ID != id {
			t.Errorf("Result %d: expected %q, got %q", i, id, results[i].ID)
		}
	}
}

func TestFilterExactMatchRanksFirst(t *testing.T) {
	results := Filter(testData(), "fire")

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].ID != "fire" {
		t.Errorf("Exact match should rank first, got %q", results[0].ID)
	}
	if results[1].ID != "firecracker" {
		t.Errorf("Expected %q second, got %q", "firecracker", results[1].ID)
	}
}

func TestFilterNoMatches(t *testing.T) {
	if results := Filter(testData(), "nope"); len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}
