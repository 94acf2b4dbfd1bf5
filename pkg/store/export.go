package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/emopick/emopick-cli/pkg/models"
)

// ExportFilename returns the dated default name for an export file.
func ExportFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s.json", prefix, now.Format("2006-01-02"))
}

// ExportTo writes the current collection as indented JSON to path and
// returns the number of exported records. The file shape is identical to
// the persisted slot, so an export can be imported back as-is.
func ExportTo(path string) (int, error) {
	records := Load()

	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal custom emojis: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return 0, fmt.Errorf("failed to write export file %s: %w", path, err)
	}

	return len(records), nil
}

// ImportFrom reads a JSON export file and merges it into the store. Any
// top-level shape other than an array of records is rejected outright.
func ImportFrom(path string) (added, updated int, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read import file %s: %w", path, err)
	}

	var incoming []models.CustomEmoji
	if err := json.Unmarshal(content, &incoming); err != nil {
		return 0, 0, fmt.Errorf("import file is not a JSON array of emoji records: %w", err)
	}

	return ImportMerge(incoming)
}
