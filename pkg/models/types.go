package models

// CustomEmoji is a user-defined, image-backed emoji record. Records persist
// as a flat JSON array; ID is the merge key, Name must be unique across the
// collection, and Keywords always starts with the name.
type CustomEmoji struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Src      string   `json:"src"`
	Keywords []string `json:"keywords,omitempty"`
}
