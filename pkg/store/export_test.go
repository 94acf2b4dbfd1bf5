package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/emopick/emopick-cli/pkg/models"
)

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	got := ExportFilename("custom-emojis", now)
	want := "custom-emojis-2026-08-30.json"
	if got != want {
		t.Errorf("ExportFilename = %q, want %q", got, want)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	setupStoreDir(t)

	records := []models.CustomEmoji{
		{ID: "wave", Name: "Wave", Src: "https://x/y.png", Keywords: []string{"Wave"}},
		{ID: "ship-it", Name: "Ship It", Src: "https://x/s.png", Keywords: []string{"Ship It"}},
	}
	if err := Save(records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	exportPath := filepath.Join(t.TempDir(), "out.json")
	count, err := ExportTo(exportPath)
	if err != nil {
		t.Fatalf("ExportTo failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 exported records, got %d", count)
	}

	if err := Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	added, updated, err := ImportFrom(exportPath)
	if err != nil {
		t.Fatalf("ImportFrom failed: %v", err)
	}
	if added != 2 || updated != 0 {
		t.Errorf("Expected added=2 updated=0, got added=%d updated=%d", added, updated)
	}

	loaded := Load()
	if len(loaded) != 2 || loaded[0].ID != "wave" || loaded[1].ID != "ship-it" {
		t.Errorf("Round trip lost records: %+v", loaded)
	}
}

func TestImportFromRejectsNonArray(t *testing.T) {
	setupStoreDir(t)

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"id":"wave","name":"Wave","src":"s"}`), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, _, err := ImportFrom(path); err == nil {
		t.Error("Expected a non-array payload to be rejected")
	}
}
