package composer

import (
	"github.com/samber/lo"

	"github.com/emopick/emopick-cli/pkg/emoji"
	"github.com/emopick/emopick-cli/pkg/models"
)

const (
	// CustomCategoryID is the fixed id of the synthetic category that holds
	// user-defined emojis.
	CustomCategoryID = "custom"

	// CustomCategoryName is its display name.
	CustomCategoryName = "Custom"
)

// Compose merges the base dataset with the user's custom records. With no
// custom records the base is returned unchanged. Otherwise a new dataset is
// built: base categories followed by one synthetic "custom" category whose
// members are the record ids in collection order, and a lookup table
// extended with one entry per record. Base entries are never mutated; a
// custom id colliding with a base id wins in the merged table.
func Compose(base *emoji.Data, custom []models.CustomEmoji) *emoji.Data {
	if len(custom) == 0 {
		return base
	}

	merged := &emoji.Data{
		Categories: make([]emoji.Category, 0, len(base.Categories)+1),
		Emojis:     make(map[string]emoji.Emoji, len(base.Emojis)+len(custom)),
	}

	merged.Categories = append(merged.Categories, base.Categories...)
	for id, e := range base.Emojis {
		merged.Emojis[id] = e
	}

	merged.Categories = append(merged.Categories, emoji.Category{
		ID:   CustomCategoryID,
		Name: CustomCategoryName,
		EmojiIDs: lo.Map(custom, func(rec models.CustomEmoji, _ int) string {
			return rec.ID
		}),
	})

	for _, rec := range custom {
		merged.Emojis[rec.ID] = emoji.Emoji{
			ID:       rec.ID,
			Name:     rec.Name,
			Src:      rec.Src,
			Keywords: rec.Keywords,
		}
	}

	return merged
}
