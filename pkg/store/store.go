package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/emopick/emopick-cli/pkg/models"
)

const (
	EmopickDir       = ".emopick"
	CustomEmojisFile = "custom-emojis.json"
	SettingsFile     = "settings.yaml"
)

// ErrDuplicateName is returned by Add when another record already uses the
// requested display name.
var ErrDuplicateName = errors.New("duplicate emoji name")

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateID checks the id shape shared by Add and ImportMerge.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("emoji id cannot be empty")
	}
	if !validID.MatchString(id) {
		return fmt.Errorf("invalid emoji id %q (letters, digits, underscore and hyphen only)", id)
	}
	return nil
}

func InitProjectStructure() error {
	if err := os.MkdirAll(EmopickDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", EmopickDir, err)
	}

	settingsPath := filepath.Join(EmopickDir, SettingsFile)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// CustomEmojisPath returns the path of the persisted record slot.
func CustomEmojisPath() string {
	return filepath.Join(EmopickDir, CustomEmojisFile)
}

// Load reads the persisted custom emoji collection. A missing slot or a
// decode failure yields an empty collection, never an error; decode
// failures are logged.
func Load() []models.CustomEmoji {
	path := CustomEmojisPath()

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read custom emoji store", "path", path, "err", err)
		}
		return []models.CustomEmoji{}
	}

	var records []models.CustomEmoji
	if err := json.Unmarshal(content, &records); err != nil {
		slog.Warn("failed to decode custom emoji store, treating as empty", "path", path, "err", err)
		return []models.CustomEmoji{}
	}
	if records == nil {
		return []models.CustomEmoji{}
	}

	return records
}

// Save serializes and writes the full collection.
func Save(records []models.CustomEmoji) error {
	if records == nil {
		records = []models.CustomEmoji{}
	}

	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal custom emojis: %w", err)
	}

	if err := os.MkdirAll(EmopickDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", EmopickDir, err)
	}

	if err := os.WriteFile(CustomEmojisPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write custom emoji store: %w", err)
	}

	return nil
}

// Add upserts a record by id. A record whose id already exists is replaced
// in place; a name held by a different id is rejected.
func Add(rec models.CustomEmoji) error {
	if err := ValidateID(rec.ID); err != nil {
		return err
	}
	if rec.Name == "" {
		return fmt.Errorf("emoji name cannot be empty")
	}
	if rec.Src == "" {
		return fmt.Errorf("emoji source cannot be empty")
	}

	records := Load()
	for _, existing := range records {
		if existing.ID != rec.ID && existing.Name == rec.Name {
			return fmt.Errorf("%w: %q is already used by emoji %q", ErrDuplicateName, rec.Name, existing.ID)
		}
	}

	rec.Keywords = normalizeKeywords(rec.Name, rec.Keywords)

	return Save(upsert(records, rec))
}

// Remove filters out the record with the given id. The bool reports whether
// a record was actually removed.
func Remove(id string) (bool, error) {
	records := Load()
	remaining := lo.Reject(records, func(rec models.CustomEmoji, _ int) bool {
		return rec.ID == id
	})
	if len(remaining) == len(records) {
		return false, nil
	}

	if err := Save(remaining); err != nil {
		return false, err
	}
	return true, nil
}

// ImportMerge upserts every incoming record by id against the existing
// collection and persists the merged result with a single save. If any
// incoming record is invalid the whole import fails with no partial write.
func ImportMerge(incoming []models.CustomEmoji) (added, updated int, err error) {
	for i, rec := range incoming {
		if rec.ID == "" || rec.Name == "" || rec.Src == "" {
			return 0, 0, fmt.Errorf("record %d is missing a required field (id, name and src are required)", i)
		}
		if err := ValidateID(rec.ID); err != nil {
			return 0, 0, fmt.Errorf("record %d: %w", i, err)
		}
	}

	records := Load()
	existing := lo.SliceToMap(records, func(rec models.CustomEmoji) (string, struct{}) {
		return rec.ID, struct{}{}
	})

	for _, rec := range incoming {
		rec.Keywords = normalizeKeywords(rec.Name, rec.Keywords)
		if _, ok := existing[rec.ID]; ok {
			updated++
		} else {
			added++
			existing[rec.ID] = struct{}{}
		}
		records = upsert(records, rec)
	}

	if err := Save(records); err != nil {
		return 0, 0, err
	}
	return added, updated, nil
}

// Clear persists an empty collection.
func Clear() error {
	return Save([]models.CustomEmoji{})
}

// upsert replaces the record with a matching id in place, or appends.
func upsert(records []models.CustomEmoji, rec models.CustomEmoji) []models.CustomEmoji {
	for i, existing := range records {
		if existing.ID == rec.ID {
			records[i] = rec
			return records
		}
	}
	return append(records, rec)
}

// normalizeKeywords guarantees the display name is the first keyword and
// drops duplicates.
func normalizeKeywords(name string, keywords []string) []string {
	return lo.Uniq(append([]string{name}, keywords...))
}

// ReadSettings loads the settings file, falling back to defaults when it is
// missing.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(filepath.Join(EmopickDir, SettingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// WriteSettings persists the settings file.
func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.MkdirAll(EmopickDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", EmopickDir, err)
	}

	if err := os.WriteFile(filepath.Join(EmopickDir, SettingsFile), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
