package cli

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) = %v, want nil", format, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(\"xml\") should fail")
	}
}

func TestValidateEmojiName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain", input: "Party Parrot", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "newline", input: "a\nb", wantErr: true},
		{name: "tab", input: "a\tb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmojiName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmojiName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSuggestID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Wave", want: "wave"},
		{name: "spaces", input: "Party Parrot", want: "party-parrot"},
		{name: "punctuation collapsed", input: "Ship it!! (v2)", want: "ship-it-v2"},
		{name: "underscores kept", input: "snake_case", want: "snake_case"},
		{name: "leading and trailing trimmed", input: "  hey  ", want: "hey"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestID(tt.input); got != tt.want {
				t.Errorf("SuggestID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("abcdef", 5); got != "ab..." {
		t.Errorf("TruncateString = %q, want %q", got, "ab...")
	}
	if got := TruncateString("abc", 5); got != "abc" {
		t.Errorf("TruncateString = %q, want %q", got, "abc")
	}
}
