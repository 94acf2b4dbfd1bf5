package imgsrc

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https", url: "https://example.com/emoji.png", wantErr: false},
		{name: "http", url: "http://example.com/emoji.png", wantErr: false},
		{name: "no scheme", url: "example.com/emoji.png", wantErr: true},
		{name: "ftp scheme", url: "ftp://example.com/emoji.png", wantErr: true},
		{name: "missing host", url: "https:///emoji.png", wantErr: true},
		{name: "garbage", url: "://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestCheckURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Header().Set("Content-Type", "image/png")
		case "/page.html":
			w.Header().Set("Content-Type", "text/html")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	if err := CheckURL(srv.URL+"/ok.png", 2*time.Second); err != nil {
		t.Errorf("Expected image URL to pass, got %v", err)
	}
	if err := CheckURL(srv.URL+"/page.html", 2*time.Second); err == nil {
		t.Error("Expected non-image content type to fail")
	}
	if err := CheckURL(srv.URL+"/missing.png", 2*time.Second); err == nil {
		t.Error("Expected 404 to fail")
	}
}

func TestCheckURLTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	start := time.Now()
	err := CheckURL(srv.URL+"/slow.png", 50*time.Millisecond)
	if err == nil {
		t.Error("Expected a hanging server to fail the check")
	}
	if time.Since(start) > 400*time.Millisecond {
		t.Error("Check was not bounded by the timeout")
	}
}

func TestEncodeFile(t *testing.T) {
	path := writeTempFile(t, "ok.png", pngHeader)

	uri, err := EncodeFile(path, 1024)
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("Expected png data URI, got %q", uri)
	}
	if !IsDataURI(uri) {
		t.Error("Encoded result should be recognized as a data URI")
	}
}

func TestEncodeFileRejectsOversized(t *testing.T) {
	path := writeTempFile(t, "big.png", append(pngHeader, make([]byte, 64)...))

	if _, err := EncodeFile(path, 10); err == nil {
		t.Error("Expected oversized file to be rejected")
	}
}

func TestEncodeFileRejectsWrongType(t *testing.T) {
	path := writeTempFile(t, "notes.txt", []byte("just some text, clearly not an image"))

	if _, err := EncodeFile(path, 1024); err == nil {
		t.Error("Expected non-image file to be rejected")
	}
}

func TestEncodeFileMissing(t *testing.T) {
	if _, err := EncodeFile(filepath.Join(t.TempDir(), "nope.png"), 1024); err == nil {
		t.Error("Expected missing file to be rejected")
	}
}
