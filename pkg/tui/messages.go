package tui

import "github.com/emopick/emopick-cli/pkg/emoji"

// Messages for communication between models

// StatusMsg sets the status bar text.
type StatusMsg string

// EmojiSelectedMsg is emitted by the picker when an emoji is chosen.
type EmojiSelectedMsg struct {
	Emoji emoji.Emoji
}

// rebuildPickerMsg forces a full picker rebuild from freshly composed data.
// Emitted after every store mutation: the picker has no incremental update
// path, so the whole widget is discarded and recreated.
type rebuildPickerMsg struct{}

// storeChangedMsg is emitted by the file watcher when the persisted slot
// changes outside the manager panel (e.g. via the CLI).
type storeChangedMsg struct{}

// urlCheckedMsg carries the result of the async URL existence check.
type urlCheckedMsg struct {
	err error
}
