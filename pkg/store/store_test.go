package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/emopick/emopick-cli/pkg/models"
)

func setupStoreDir(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}
}

func TestLoadMissingSlot(t *testing.T) {
	setupStoreDir(t)

	records := Load()
	if len(records) != 0 {
		t.Errorf("Expected empty collection for missing slot, got %d records", len(records))
	}
}

func TestLoadCorruptSlot(t *testing.T) {
	setupStoreDir(t)

	if err := os.WriteFile(CustomEmojisPath(), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt slot: %v", err)
	}

	records := Load()
	if len(records) != 0 {
		t.Errorf("Expected empty collection for corrupt slot, got %d records", len(records))
	}
}

func TestLoadRejectsNonArray(t *testing.T) {
	setupStoreDir(t)

	if err := os.WriteFile(CustomEmojisPath(), []byte(`{"id":"wave"}`), 0644); err != nil {
		t.Fatalf("failed to write slot: %v", err)
	}

	records := Load()
	if len(records) != 0 {
		t.Errorf("Expected empty collection for non-array slot, got %d records", len(records))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setupStoreDir(t)

	records := []models.CustomEmoji{
		{ID: "wave", Name: "Wave", Src: "https://x/y.png", Keywords: []string{"Wave", "hello"}},
		{ID: "party-parrot", Name: "Party Parrot", Src: "data:image/gif;base64,R0lGOD", Keywords: []string{"Party Parrot"}},
	}

	if err := Save(records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Load()
	if len(loaded) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(loaded))
	}
	for i := range records {
		if loaded[i].ID != records[i].ID || loaded[i].Name != records[i].Name || loaded[i].Src != records[i].Src {
			t.Errorf("Record %d mismatch: got %+v, want %+v", i, loaded[i], records[i])
		}
	}
}

func TestAddNewRecord(t *testing.T) {
	setupStoreDir(t)

	err := Add(models.CustomEmoji{ID: "wave", Name: "Wave", Src: "https://x/y.png"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	records := Load()
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].ID != "wave" {
		t.Errorf("Expected id %q, got %q", "wave", records[0].ID)
	}
}

func TestAddKeywordsStartWithName(t *testing.T) {
	setupStoreDir(t)

	err := Add(models.CustomEmoji{ID: "wave", Name: "Wave", Src: "s", Keywords: []string{"hello", "Wave", "hi"}})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	records := Load()
	want := []string{"Wave", "hello", "hi"}
	if len(records[0].Keywords) != len(want) {
		t.Fatalf("Expected keywords %v, got %v", want, records[0].Keywords)
	}
	for i, kw := range want {
		if records[0].Keywords[i] != kw {
			t.Errorf("Keyword %d: expected %q, got %q", i, kw, records[0].Keywords[i])
		}
	}
}

func TestAddUpsertsInPlace(t *testing.T) {
	setupStoreDir(t)

	initial := []models.CustomEmoji{
		{ID: "a", Name: "A", Src: "s1"},
		{ID: "b", Name: "B", Src: "s2"},
		{ID: "c", Name: "C", Src: "s3"},
	}
	if err := Save(initial); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := Add(models.CustomEmoji{ID: "b", Name: "B", Src: "s2-new"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	records := Load()
	if len(records) != 3 {
		t.Fatalf("Expected 3 records after upsert, got %d", len(records))
	}
	if records[1].ID != "b" {
		t.Errorf("Expected id %q at position 1, got %q", "b", records[1].ID)
	}
	if records[1].Src != "s2-new" {
		t.Errorf("Expected updated src %q, got %q", "s2-new", records[1].Src)
	}
}

func TestAddRejectsDuplicateName(t *testing.T) {
	setupStoreDir(t)

	if err := Add(models.CustomEmoji{ID: "a", Name: "Wave", Src: "s1"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := Add(models.CustomEmoji{ID: "b", Name: "Wave", Src: "s2"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Expected ErrDuplicateName, got %v", err)
	}

	records := Load()
	if len(records) != 1 {
		t.Errorf("Store should be unchanged after rejected add, got %d records", len(records))
	}
}

func TestAddAllowsSameNameOnSameID(t *testing.T) {
	setupStoreDir(t)

	if err := Add(models.CustomEmoji{ID: "a", Name: "Wave", Src: "s1"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := Add(models.CustomEmoji{ID: "a", Name: "Wave", Src: "s2"}); err != nil {
		t.Errorf("Updating a record with its own name should succeed, got %v", err)
	}
}

func TestAddValidatesID(t *testing.T) {
	setupStoreDir(t)

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid simple", id: "wave", wantErr: false},
		{name: "valid with underscore and hyphen", id: "party_parrot-2", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "spaces", id: "party parrot", wantErr: true},
		{name: "slash", id: "a/b", wantErr: true},
		{name: "unicode", id: "héllo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Add(models.CustomEmoji{ID: tt.id, Name: "n-" + tt.id, Src: "s"})
			if (err != nil) != tt.wantErr {
				t.Errorf("Add(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	setupStoreDir(t)

	if err := Save([]models.CustomEmoji{{ID: "a", Name: "A", Src: "s"}, {ID: "b", Name: "B", Src: "s"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := Remove("a")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !removed {
		t.Error("Expected Remove to report a removal")
	}

	records := Load()
	if len(records) != 1 || records[0].ID != "b" {
		t.Errorf("Expected only %q to remain, got %+v", "b", records)
	}

	removed, err = Remove("missing")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if removed {
		t.Error("Removing a missing id should report false")
	}
}

func TestImportMergeCounts(t *testing.T) {
	setupStoreDir(t)

	if err := Save([]models.CustomEmoji{{ID: "a", Name: "A", Src: "s1"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	added, updated, err := ImportMerge([]models.CustomEmoji{
		{ID: "a", Name: "A2", Src: "s2"},
		{ID: "b", Name: "B", Src: "s3"},
	})
	if err != nil {
		t.Fatalf("ImportMerge failed: %v", err)
	}
	if added != 1 || updated != 1 {
		t.Errorf("Expected added=1 updated=1, got added=%d updated=%d", added, updated)
	}

	records := Load()
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].ID != "a" || records[0].Name != "A2" {
		t.Errorf("Expected record %q updated to name %q, got %+v", "a", "A2", records[0])
	}
	if records[1].ID != "b" {
		t.Errorf("Expected record %q appended, got %+v", "b", records[1])
	}
}

func TestImportMergeRejectsInvalidWithoutPartialWrite(t *testing.T) {
	setupStoreDir(t)

	if err := Save([]models.CustomEmoji{{ID: "a", Name: "A", Src: "s1"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, _, err := ImportMerge([]models.CustomEmoji{
		{ID: "b", Name: "B", Src: "s2"},
		{ID: "c", Name: "", Src: "s3"}, // invalid: empty name
	})
	if err == nil {
		t.Fatal("Expected ImportMerge to fail on invalid record")
	}

	records := Load()
	if len(records) != 1 || records[0].ID != "a" {
		t.Errorf("Store should be untouched after failed import, got %+v", records)
	}
}

func TestClear(t *testing.T) {
	setupStoreDir(t)

	if err := Save([]models.CustomEmoji{{ID: "a", Name: "A", Src: "s"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if records := Load(); len(records) != 0 {
		t.Errorf("Expected empty collection after Clear, got %d records", len(records))
	}

	// The slot itself stays present, holding an empty array.
	if _, err := os.Stat(CustomEmojisPath()); err != nil {
		t.Errorf("Expected slot file to exist after Clear: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	setupStoreDir(t)

	settings := models.DefaultSettings()
	settings.Picker.Columns = 10
	settings.URLCheck.TimeoutSeconds = 3

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	loaded, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if loaded.Picker.Columns != 10 {
		t.Errorf("Expected picker columns 10, got %d", loaded.Picker.Columns)
	}
	if loaded.URLCheck.TimeoutSeconds != 3 {
		t.Errorf("Expected url check timeout 3, got %d", loaded.URLCheck.TimeoutSeconds)
	}
}

func TestReadSettingsMissingFileUsesDefaults(t *testing.T) {
	setupStoreDir(t)

	if err := os.Remove(filepath.Join(EmopickDir, SettingsFile)); err != nil {
		t.Fatalf("failed to remove settings: %v", err)
	}

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.Upload.MaxFileSize != models.DefaultSettings().Upload.MaxFileSize {
		t.Errorf("Expected default max file size, got %d", settings.Upload.MaxFileSize)
	}
}
