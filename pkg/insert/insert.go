package insert

import (
	"fmt"

	"github.com/emopick/emopick-cli/pkg/emoji"
)

// ResolveText returns the text a selected emoji contributes to the message.
// Image-backed entries with no native glyph become a markdown image
// reference; everything else inserts its glyph verbatim.
func ResolveText(e emoji.Emoji) string {
	if e.Src != "" && e.Native == "" {
		return fmt.Sprintf("![%s](%s)", e.ID, e.Src)
	}
	return e.Native
}
