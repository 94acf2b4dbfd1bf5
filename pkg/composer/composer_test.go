package composer

import (
	"testing"

	"github.com/emopick/emopick-cli/pkg/emoji"
	"github.com/emopick/emopick-cli/pkg/models"
)

func TestComposeEmptyCustomReturnsBaseUnchanged(t *testing.T) {
	base := emoji.Base()

	composed := Compose(base, nil)
	if composed != base {
		t.Error("Compose with no custom records should return the base dataset itself")
	}

	composed = Compose(base, []models.CustomEmoji{})
	if composed != base {
		t.Error("Compose with an empty slice should return the base dataset itself")
	}
}

func TestComposeAppendsCustomCategory(t *testing.T) {
	base := emoji.Base()
	custom := []models.CustomEmoji{
		{ID: "wave", Name: "Wave", Src: "https://x/y.png", Keywords: []string{"Wave", "hello"}},
		{ID: "ship-it", Name: "Ship It", Src: "https://x/squirrel.png", Keywords: []string{"Ship It"}},
	}

	composed := Compose(base, custom)
	if composed == base {
		t.Fatal("Compose with custom records should build a new dataset")
	}

	if len(composed.Categories) != len(base.Categories)+1 {
		t.Fatalf("Expected exactly one added category, got %d vs %d",
			len(composed.Categories), len(base.Categories))
	}

	last := composed.Categories[len(composed.Categories)-1]
	if last.ID != CustomCategoryID || last.Name != CustomCategoryName {
		t.Errorf("Expected category %q/%q, got %q/%q", CustomCategoryID, CustomCategoryName, last.ID, last.Name)
	}

	wantIDs := []string{"wave", "ship-it"}
	if len(last.EmojiIDs) != len(wantIDs) {
		t.Fatalf("Expected member ids %v, got %v", wantIDs, last.EmojiIDs)
	}
	for i, id := range wantIDs {
		if last.EmojiIDs[i] != id {
			t.Errorf("Member %d: expected %q, got %q", i, id, last.EmojiIDs[i])
		}
	}

	e, ok := composed.Lookup("wave")
	if !ok {
		t.Fatal("Expected custom emoji in merged lookup table")
	}
	if e.Src != "https://x/y.png" || e.Native != "" {
		t.Errorf("Custom entry should carry src and no native glyph, got %+v", e)
	}
}

func TestComposeCustomWinsIDCollision(t *testing.T) {
	base := emoji.Base()
	if _, ok := base.Lookup("fire"); !ok {
		t.Fatal("test expects base dataset to contain the fire emoji")
	}

	composed := Compose(base, []models.CustomEmoji{
		{ID: "fire", Name: "Dumpster Fire", Src: "https://x/dumpster.gif"},
	})

	e, _ := composed.Lookup("fire")
	if e.Src != "https://x/dumpster.gif" {
		t.Errorf("Custom entry should win an id collision, got %+v", e)
	}
}

func TestComposeDoesNotMutateBase(t *testing.T) {
	base := emoji.Base()
	baseCategories := len(base.Categories)
	baseCount := base.Count()
	original, _ := base.Lookup("fire")

	Compose(base, []models.CustomEmoji{
		{ID: "fire", Name: "Dumpster Fire", Src: "https://x/dumpster.gif"},
		{ID: "wave", Name: "Wave", Src: "https://x/y.png"},
	})

	if len(base.Categories) != baseCategories {
		t.Error("Compose mutated base categories")
	}
	if base.Count() != baseCount {
		t.Error("Compose mutated base lookup table size")
	}
	if after, _ := base.Lookup("fire"); after.Src != original.Src || after.Native != original.Native {
		t.Error("Compose mutated a base entry")
	}
}
