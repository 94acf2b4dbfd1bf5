package emoji

// Emoji is a single entry in the picker dataset. Standard emojis carry a
// native glyph; custom ones carry an image source and no glyph.
type Emoji struct {
	ID       string
	Name     string
	Native   string
	Src      string
	Keywords []string
}

// Category groups emojis for display. EmojiIDs is ordered.
type Category struct {
	ID       string
	Name     string
	EmojiIDs []string
}

// Data is a full picker dataset: ordered categories plus a flat lookup
// table keyed by emoji id.
type Data struct {
	Categories []Category
	Emojis     map[string]Emoji
}

// Lookup returns the emoji with the given id, if present.
func (d *Data) Lookup(id string) (Emoji, bool) {
	e, ok := d.Emojis[id]
	return e, ok
}

// Count returns the number of emojis in the dataset.
func (d *Data) Count() int {
	return len(d.Emojis)
}
