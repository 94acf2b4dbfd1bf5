// Package imgsrc validates and encodes the image sources a custom emoji can
// carry: a remote URL or a local file encoded as an inline data URI.
package imgsrc

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Content types accepted for uploads, matched against the sniffed type.
var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// IsDataURI reports whether src is an inline data-encoded image.
func IsDataURI(src string) bool {
	return strings.HasPrefix(src, "data:image/")
}

// ValidateURL checks the shape of a remote image URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return nil
}

// CheckURL performs a live existence and content-type check against a
// remote image URL. The request is bounded by timeout; a hanging server
// fails the check instead of blocking the caller.
func CheckURL(raw string, timeout time.Duration) error {
	if err := ValidateURL(raw); err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequest(http.MethodHead, raw, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("URL is unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("URL returned status %d", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("URL does not point at an image (content type %s)", ct)
	}

	return nil
}

// EncodeFile reads a local image file, validates its size and sniffed
// content type, and returns it as a data URI.
func EncodeFile(path string, maxBytes int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, expected an image file", path)
	}
	if info.Size() > maxBytes {
		return "", fmt.Errorf("image file is too large (%d bytes, limit %d)", info.Size(), maxBytes)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image file: %w", err)
	}

	ct := http.DetectContentType(content)
	if !allowedTypes[ct] {
		return "", fmt.Errorf("unsupported image type %s (png, jpeg, gif and webp are accepted)", ct)
	}

	return fmt.Sprintf("data:%s;base64,%s", ct, base64.StdEncoding.EncodeToString(content)), nil
}
