package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emopick/emopick-cli/internal/cli"
	"github.com/emopick/emopick-cli/pkg/imgsrc"
	"github.com/emopick/emopick-cli/pkg/models"
	"github.com/emopick/emopick-cli/pkg/store"
)

type managerMode int

const (
	managerList managerMode = iota
	managerAdd
	managerPickImage
	managerPickImport
	managerConfirmClear
)

// ManagerModel is the custom emoji management panel. Its visibility is
// independent of the picker's hidden/visible state; every mutation it
// performs ends in a picker rebuild.
type ManagerModel struct {
	active   bool
	mode     managerMode
	settings *models.Settings

	records []models.CustomEmoji
	cursor  int

	nameInput  textinput.Model
	idInput    textinput.Model
	srcInput   textinput.Model
	focusIndex int
	formErr    string

	// Async URL check state.
	checking    bool
	spin        spinner.Model
	pendingName string
	pendingID   string
	pendingSrc  string

	files filepicker.Model

	width  int
	height int
}

func NewManagerModel(settings *models.Settings) *ManagerModel {
	name := textinput.New()
	name.Placeholder = "Party Parrot"
	name.CharLimit = 64

	id := textinput.New()
	id.Placeholder = "party-parrot"
	id.CharLimit = 64

	src := textinput.New()
	src.Placeholder = "https://example.com/parrot.gif or ./parrot.png"
	src.CharLimit = 2048

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &ManagerModel{
		settings:  settings,
		nameInput: name,
		idInput:   id,
		srcInput:  src,
		spin:      sp,
	}
}

// Active reports whether the panel is open.
func (m *ManagerModel) Active() bool {
	return m.active
}

// Open shows the panel on its list screen with a fresh store snapshot.
func (m *ManagerModel) Open() {
	m.active = true
	m.mode = managerList
	m.reload()
}

// Close hides the panel.
func (m *ManagerModel) Close() {
	m.active = false
	m.formErr = ""
	m.checking = false
}

func (m *ManagerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.files.Height = max(5, height-8)
}

func (m *ManagerModel) reload() {
	m.records = store.Load()
	if m.cursor >= len(m.records) {
		m.cursor = max(0, len(m.records)-1)
	}
}

func (m *ManagerModel) startAdd() {
	m.mode = managerAdd
	m.formErr = ""
	m.nameInput.SetValue("")
	m.idInput.SetValue("")
	m.srcInput.SetValue("")
	m.focusIndex = 0
	m.nameInput.Focus()
	m.idInput.Blur()
	m.srcInput.Blur()
}

func (m *ManagerModel) startFilePicker(mode managerMode) tea.Cmd {
	m.mode = mode
	m.files = filepicker.New()
	if mode == managerPickImport {
		m.files.AllowedTypes = []string{".json"}
	} else {
		m.files.AllowedTypes = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}
	}
	if wd, err := os.Getwd(); err == nil {
		m.files.CurrentDirectory = wd
	}
	m.files.Height = max(5, m.height-8)
	return m.files.Init()
}

func (m *ManagerModel) Update(msg tea.Msg) (*ManagerModel, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case urlCheckedMsg:
		// The user may have cancelled the check (or left the form) while it
		// was in flight; a stale result must not commit the add.
		if !m.checking {
			return m, nil
		}
		m.checking = false
		if msg.err != nil {
			m.formErr = msg.err.Error()
			return m, nil
		}
		return m, m.finishAdd(m.pendingID, m.pendingName, m.pendingSrc)

	case spinner.TickMsg:
		if m.checking {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case managerList:
			return m.updateList(msg)
		case managerAdd:
			return m.updateAdd(msg)
		case managerConfirmClear:
			return m.updateConfirmClear(msg)
		}
	}

	if m.mode == managerPickImage || m.mode == managerPickImport {
		return m.updateFilePicker(msg)
	}

	return m, nil
}

func (m *ManagerModel) updateList(msg tea.KeyMsg) (*ManagerModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.Close()
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}

	case "a":
		m.startAdd()

	case "d":
		if len(m.records) == 0 {
			return m, nil
		}
		id := m.records[m.cursor].ID
		if _, err := store.Remove(id); err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		m.reload()
		return m, tea.Batch(
			func() tea.Msg { return rebuildPickerMsg{} },
			func() tea.Msg { return StatusMsg(fmt.Sprintf("Removed custom emoji '%s'", id)) },
		)

	case "e":
		return m, m.doExport()

	case "i":
		return m, m.startFilePicker(managerPickImport)

	case "x":
		if len(m.records) > 0 {
			m.mode = managerConfirmClear
		}
	}
	return m, nil
}

func (m *ManagerModel) updateAdd(msg tea.KeyMsg) (*ManagerModel, tea.Cmd) {
	if m.checking {
		// A live URL check is in flight; only allow bailing out.
		if msg.String() == "esc" {
			m.checking = false
			m.pendingName, m.pendingID, m.pendingSrc = "", "", ""
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.mode = managerList
		m.formErr = ""
		return m, nil

	case "tab", "shift+tab", "enter":
		if msg.String() == "enter" && m.focusIndex == 2 {
			return m.submitAdd()
		}
		if msg.String() == "shift+tab" {
			m.focusIndex = (m.focusIndex + 2) % 3
		} else {
			m.focusIndex = (m.focusIndex + 1) % 3
		}
		// Suggest an id from the name the first time the field is left.
		if m.focusIndex == 1 && m.idInput.Value() == "" {
			m.idInput.SetValue(cli.SuggestID(m.nameInput.Value()))
		}
		m.nameInput.Blur()
		m.idInput.Blur()
		m.srcInput.Blur()
		switch m.focusIndex {
		case 0:
			m.nameInput.Focus()
		case 1:
			m.idInput.Focus()
		case 2:
			m.srcInput.Focus()
		}
		return m, nil

	case "ctrl+f":
		return m, m.startFilePicker(managerPickImage)

	case "ctrl+s":
		return m.submitAdd()
	}

	var cmd tea.Cmd
	switch m.focusIndex {
	case 0:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case 1:
		m.idInput, cmd = m.idInput.Update(msg)
	case 2:
		m.srcInput, cmd = m.srcInput.Update(msg)
	}
	return m, cmd
}

func (m *ManagerModel) submitAdd() (*ManagerModel, tea.Cmd) {
	name := m.nameInput.Value()
	id := m.idInput.Value()
	src := m.srcInput.Value()

	if err := cli.ValidateEmojiName(name); err != nil {
		m.formErr = err.Error()
		return m, nil
	}
	if id == "" {
		id = cli.SuggestID(name)
		m.idInput.SetValue(id)
	}
	if err := store.ValidateID(id); err != nil {
		m.formErr = err.Error()
		return m, nil
	}
	if src == "" {
		m.formErr = "image source is required (URL, file path, or ctrl+f to browse)"
		return m, nil
	}

	if imgsrc.IsDataURI(src) {
		return m, m.finishAdd(id, name, src)
	}

	// A readable local path is treated as an upload and embedded.
	if _, err := os.Stat(src); err == nil {
		encoded, err := imgsrc.EncodeFile(src, m.settings.Upload.MaxFileSize)
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		return m, m.finishAdd(id, name, encoded)
	}

	if err := imgsrc.ValidateURL(src); err != nil {
		m.formErr = err.Error()
		return m, nil
	}

	if !m.settings.URLCheck.Enabled {
		return m, m.finishAdd(id, name, src)
	}

	m.checking = true
	m.formErr = ""
	m.pendingID, m.pendingName, m.pendingSrc = id, name, src
	timeout := time.Duration(m.settings.URLCheck.TimeoutSeconds) * time.Second
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		return urlCheckedMsg{err: imgsrc.CheckURL(src, timeout)}
	})
}

func (m *ManagerModel) finishAdd(id, name, src string) tea.Cmd {
	if err := store.Add(models.CustomEmoji{ID: id, Name: name, Src: src}); err != nil {
		// Validation errors (e.g. duplicate name) keep the form open with
		// its input intact for correction.
		m.formErr = err.Error()
		return nil
	}

	m.mode = managerList
	m.formErr = ""
	m.reload()
	return tea.Batch(
		func() tea.Msg { return rebuildPickerMsg{} },
		func() tea.Msg { return StatusMsg(fmt.Sprintf("Custom emoji '%s' saved", id)) },
	)
}

func (m *ManagerModel) updateConfirmClear(msg tea.KeyMsg) (*ManagerModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		count := len(m.records)
		if err := store.Clear(); err != nil {
			m.formErr = err.Error()
			m.mode = managerList
			return m, nil
		}
		m.mode = managerList
		m.reload()
		return m, tea.Batch(
			func() tea.Msg { return rebuildPickerMsg{} },
			func() tea.Msg { return StatusMsg(fmt.Sprintf("Removed %d custom emojis", count)) },
		)
	case "n", "esc":
		m.mode = managerList
	}
	return m, nil
}

func (m *ManagerModel) updateFilePicker(msg tea.Msg) (*ManagerModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		if m.mode == managerPickImport {
			m.mode = managerList
		} else {
			m.mode = managerAdd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.files, cmd = m.files.Update(msg)

	if didSelect, path := m.files.DidSelectFile(msg); didSelect {
		if m.mode == managerPickImport {
			return m.runImport(path)
		}

		encoded, err := imgsrc.EncodeFile(path, m.settings.Upload.MaxFileSize)
		if err != nil {
			m.formErr = err.Error()
			m.mode = managerAdd
			return m, nil
		}
		m.srcInput.SetValue(encoded)
		m.mode = managerAdd
		m.formErr = ""
		return m, nil
	}

	return m, cmd
}

func (m *ManagerModel) runImport(path string) (*ManagerModel, tea.Cmd) {
	added, updated, err := store.ImportFrom(path)
	m.mode = managerList
	if err != nil {
		m.formErr = err.Error()
		return m, nil
	}

	m.formErr = ""
	m.reload()
	return m, tea.Batch(
		func() tea.Msg { return rebuildPickerMsg{} },
		func() tea.Msg {
			return StatusMsg(fmt.Sprintf("Import complete: %d added, %d updated", added, updated))
		},
	)
}

func (m *ManagerModel) doExport() tea.Cmd {
	name := store.ExportFilename(m.settings.Export.FilenamePrefix, time.Now())
	path := filepath.Join(m.settings.Export.Path, name)

	count, err := store.ExportTo(path)
	if err != nil {
		m.formErr = err.Error()
		return nil
	}

	m.formErr = ""
	return func() tea.Msg {
		return StatusMsg(fmt.Sprintf("%d custom emojis exported to %s", count, path))
	}
}
