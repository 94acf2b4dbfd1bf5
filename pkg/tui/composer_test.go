package tui

import (
	"testing"

	"github.com/emopick/emopick-cli/pkg/emoji"
	"github.com/emopick/emopick-cli/pkg/insert"
)

func TestComposerInsertAtCaretMidText(t *testing.T) {
	m := NewComposerModel()
	m.SetSize(80, 6)

	m.InsertAtCaret("hello world")
	m.input.SetCursor(5)

	m.InsertAtCaret("😀")
	if got := m.Value(); got != "hello😀 world" {
		t.Errorf("Expected insertion at the caret, got %q", got)
	}
}

func TestComposerInsertAppendsAtEnd(t *testing.T) {
	m := NewComposerModel()
	m.SetSize(80, 6)

	m.InsertAtCaret("hello")
	m.InsertAtCaret(" 🔥")
	if got := m.Value(); got != "hello 🔥" {
		t.Errorf("Expected append at the end, got %q", got)
	}
}

func TestComposerInsertsMarkdownReference(t *testing.T) {
	m := NewComposerModel()
	m.SetSize(80, 6)

	e := emoji.Emoji{ID: "wave", Name: "Wave", Src: "https://x/y.png"}
	m.InsertAtCaret(insert.ResolveText(e))
	if got := m.Value(); got != "![wave](https://x/y.png)" {
		t.Errorf("Expected markdown reference, got %q", got)
	}
}
