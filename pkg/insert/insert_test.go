package insert

import (
	"testing"

	"github.com/emopick/emopick-cli/pkg/emoji"
)

func TestResolveText(t *testing.T) {
	tests := []struct {
		name string
		e    emoji.Emoji
		want string
	}{
		{
			name: "standard emoji uses native glyph",
			e:    emoji.Emoji{ID: "grinning", Native: "😀"},
			want: "😀",
		},
		{
			name: "custom emoji becomes markdown image",
			e:    emoji.Emoji{ID: "wave", Src: "https://x/y.png"},
			want: "![wave](https://x/y.png)",
		},
		{
			name: "native glyph wins when both are set",
			e:    emoji.Emoji{ID: "fire", Native: "🔥", Src: "https://x/fire.png"},
			want: "🔥",
		},
		{
			name: "data uri source",
			e:    emoji.Emoji{ID: "logo", Src: "data:image/png;base64,iVBOR"},
			want: "![logo](data:image/png;base64,iVBOR)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveText(tt.e); got != tt.want {
				t.Errorf("ResolveText() = %q, want %q", got, tt.want)
			}
		})
	}
}
