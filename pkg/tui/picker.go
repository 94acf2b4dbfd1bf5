package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"

	"github.com/emopick/emopick-cli/pkg/emoji"
	"github.com/emopick/emopick-cli/pkg/models"
	"github.com/emopick/emopick-cli/pkg/search"
)

const pickerCellWidth = 4

// PickerModel is the floating emoji picker overlay. It has exactly two
// states, hidden and visible; dataset changes do not mutate it in place,
// the owning App discards it and builds a new one.
type PickerModel struct {
	data    *emoji.Data
	visible bool

	searchInput textinput.Model
	results     []emoji.Emoji
	cursor      int

	columns  int
	gridRows int

	// Last rendered geometry, for outside-click detection.
	posX, posY   int
	lastW, lastH int
}

// NewPickerModel builds a picker over an already composed dataset.
func NewPickerModel(data *emoji.Data, settings *models.Settings) *PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Search emojis"
	ti.CharLimit = 64
	ti.Width = settings.Picker.Width - 6

	m := &PickerModel{
		data:        data,
		searchInput: ti,
		columns:     settings.Picker.Columns,
		gridRows:    settings.Picker.Height,
	}
	m.refilter()
	return m
}

// Visible reports the current state.
func (m *PickerModel) Visible() bool {
	return m.visible
}

// Toggle flips between hidden and visible.
func (m *PickerModel) Toggle() {
	if m.visible {
		m.Hide()
	} else {
		m.Show()
	}
}

// Show enters the visible state. The search field is cleared and refocused
// so filtering re-runs against an empty query.
func (m *PickerModel) Show() {
	m.visible = true
	m.searchInput.SetValue("")
	m.searchInput.Focus()
	m.cursor = 0
	m.refilter()
}

// Hide enters the hidden state.
func (m *PickerModel) Hide() {
	m.visible = false
	m.searchInput.Blur()
}

// SetPosition records where the App renders the overlay, for hit testing.
func (m *PickerModel) SetPosition(x, y int) {
	m.posX = x
	m.posY = y
}

func (m *PickerModel) contains(x, y int) bool {
	return x >= m.posX && x < m.posX+m.lastW && y >= m.posY && y < m.posY+m.lastH
}

func (m *PickerModel) refilter() {
	m.results = search.Filter(m.data, m.searchInput.Value())
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}
}

// Update handles input while visible. Hidden pickers ignore everything, so
// a stray outside click on a hidden picker is a no-op.
func (m *PickerModel) Update(msg tea.Msg) (*PickerModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && !m.contains(msg.X, msg.Y) {
			m.Hide()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.Hide()
			return m, nil

		case "enter":
			if len(m.results) == 0 {
				return m, nil
			}
			selected := m.results[m.cursor]
			m.Hide()
			return m, func() tea.Msg { return EmojiSelectedMsg{Emoji: selected} }

		case "left":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "right":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case "up":
			if m.cursor-m.columns >= 0 {
				m.cursor -= m.columns
			}
			return m, nil

		case "down":
			if m.cursor+m.columns < len(m.results) {
				m.cursor += m.columns
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.cursor = 0
		m.refilter()
	}
	return m, cmd
}

// View renders the overlay panel.
func (m *PickerModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Emojis"))
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.gridView())
	b.WriteString("\n")
	b.WriteString(m.footerView())

	rendered := overlayStyle.Render(b.String())
	m.lastW = lipgloss.Width(rendered)
	m.lastH = lipgloss.Height(rendered)
	return rendered
}

func (m *PickerModel) gridView() string {
	if len(m.results) == 0 {
		return helpStyle.Render("No emojis match")
	}

	rows := lo.Chunk(m.results, m.columns)

	// Keep the cursor's row in the visible window.
	cursorRow := m.cursor / m.columns
	offset := 0
	if cursorRow >= m.gridRows {
		offset = cursorRow - m.gridRows + 1
	}
	if offset+m.gridRows > len(rows) {
		offset = max(0, len(rows)-m.gridRows)
	}

	var lines []string
	for r := offset; r < len(rows) && r < offset+m.gridRows; r++ {
		var cells []string
		for c, e := range rows[r] {
			idx := r*m.columns + c
			cells = append(cells, m.cellView(e, idx == m.cursor))
		}
		lines = append(lines, strings.Join(cells, ""))
	}
	return strings.Join(lines, "\n")
}

func (m *PickerModel) cellView(e emoji.Emoji, selected bool) string {
	label := e.Native
	style := lipgloss.NewStyle()
	if label == "" {
		// Custom emojis have no glyph; show a short token instead.
		label = ":" + e.ID + ":"
		style = customTokenStyle
	}
	if lipgloss.Width(label) > pickerCellWidth {
		label = truncate.String(label, pickerCellWidth)
	}
	if selected {
		style = selectedStyle
	}

	cell := style.Render(label)
	if pad := pickerCellWidth - lipgloss.Width(cell); pad > 0 {
		cell += strings.Repeat(" ", pad)
	}
	return cell
}

func (m *PickerModel) footerView() string {
	if len(m.results) == 0 {
		return helpStyle.Render("esc close")
	}
	e := m.results[m.cursor]
	name := e.Name
	if e.Src != "" && e.Native == "" {
		name += " (custom)"
	}
	return helpStyle.Render(name + "  ·  enter insert · esc close")
}
