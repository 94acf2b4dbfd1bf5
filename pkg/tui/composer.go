package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// ComposerModel is the message field the picker inserts into.
type ComposerModel struct {
	input  textarea.Model
	width  int
	height int
}

func NewComposerModel() *ComposerModel {
	ta := textarea.New()
	ta.Placeholder = "Write a message…"
	ta.ShowLineNumbers = false
	ta.Focus()

	return &ComposerModel{input: ta}
}

func (m *ComposerModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *ComposerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(width - 2)
	m.input.SetHeight(max(3, height))
}

// InsertAtCaret splices text at the caret (replacing any selection the
// field tracks) and returns focus to the field.
func (m *ComposerModel) InsertAtCaret(text string) {
	m.input.InsertString(text)
	m.input.Focus()
}

// Value returns the current message content.
func (m *ComposerModel) Value() string {
	return m.input.Value()
}

func (m *ComposerModel) Update(msg tea.Msg) (*ComposerModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+y" {
		if err := clipboard.WriteAll(m.input.Value()); err != nil {
			return m, func() tea.Msg { return StatusMsg("Clipboard unavailable: " + err.Error()) }
		}
		return m, func() tea.Msg { return StatusMsg("Message copied to clipboard") }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ComposerModel) View() string {
	help := helpStyle.Render(wordwrap.String(
		"ctrl+e emoji picker · ctrl+g manage custom emojis · ctrl+y copy message · ctrl+c quit",
		max(20, m.width-2),
	))
	return m.input.View() + "\n" + help
}
