package cli

import (
	"fmt"
	"strings"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateEmojiName validates a custom emoji display name
func ValidateEmojiName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("emoji name cannot be empty")
	}

	for _, char := range []string{"\n", "\t"} {
		if strings.Contains(name, char) {
			return fmt.Errorf("emoji name cannot contain control characters")
		}
	}

	return nil
}

// SuggestID derives a store-safe id from a display name: lowercased, with
// runs of non-id characters collapsed to single hyphens.
func SuggestID(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
