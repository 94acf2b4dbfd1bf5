package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/emopick/emopick-cli/pkg/composer"
	"github.com/emopick/emopick-cli/pkg/emoji"
	"github.com/emopick/emopick-cli/pkg/insert"
	"github.com/emopick/emopick-cli/pkg/models"
	"github.com/emopick/emopick-cli/pkg/store"
)

// App owns the composer, the picker overlay and the manager panel, and the
// anchor relationship between the toolbar trigger and the picker.
type App struct {
	composerField *ComposerModel
	picker        *PickerModel
	manager       *ManagerModel
	settings      *models.Settings
	watcher       *fsnotify.Watcher
	width         int
	height        int
	statusMsg     string
}

func NewApp() *App {
	settings, err := store.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	a := &App{
		composerField: NewComposerModel(),
		manager:       NewManagerModel(settings),
		settings:      settings,
	}
	a.picker = a.buildPicker()

	// Watcher failures degrade to no live reload; mutations made through
	// the manager panel still rebuild the picker directly.
	if w, err := newStoreWatcher(); err == nil {
		a.watcher = w
	}

	return a
}

// buildPicker composes the dataset from scratch and constructs a fresh
// picker over it. The previous instance, if any, is simply dropped: the
// picker widget has no incremental data-update path, so every store
// mutation goes through a full rebuild.
func (a *App) buildPicker() *PickerModel {
	data := composer.Compose(emoji.Base(), store.Load())
	p := NewPickerModel(data, a.settings)
	p.SetPosition(0, 1)
	return p
}

func (a *App) rebuildPicker() {
	a.picker = a.buildPicker()
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.composerField.Init()}
	if a.watcher != nil {
		cmds = append(cmds, waitForStoreChange(a.watcher))
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.composerField.SetSize(msg.Width, msg.Height-6)
		a.manager.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if a.watcher != nil {
				_ = a.watcher.Close()
			}
			return a, tea.Quit

		case "ctrl+e":
			if !a.manager.Active() {
				a.picker.Toggle()
				return a, nil
			}

		case "ctrl+g":
			if !a.manager.Active() {
				a.picker.Hide()
				a.manager.Open()
				return a, nil
			}
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case EmojiSelectedMsg:
		// The selection callback: resolve the insertion text, splice it at
		// the caret, return focus to the field.
		a.composerField.InsertAtCaret(insert.ResolveText(msg.Emoji))
		a.statusMsg = "Inserted " + msg.Emoji.Name
		return a, nil

	case rebuildPickerMsg:
		a.rebuildPicker()
		return a, nil

	case storeChangedMsg:
		a.rebuildPicker()
		if a.watcher != nil {
			return a, waitForStoreChange(a.watcher)
		}
		return a, nil
	}

	// Route remaining input to the active model.
	var cmd tea.Cmd
	switch {
	case a.manager.Active():
		a.manager, cmd = a.manager.Update(msg)
	case a.picker.Visible():
		a.picker, cmd = a.picker.Update(msg)
	default:
		a.composerField, cmd = a.composerField.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	sections := []string{a.toolbarView()}

	switch {
	case a.manager.Active():
		sections = append(sections, a.manager.View())
	case a.picker.Visible():
		sections = append(sections, a.picker.View(), a.composerField.View())
	default:
		sections = append(sections, a.composerField.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, statusStyle.Render(a.statusMsg))
	}

	return content
}

// toolbarView renders the trigger and manage buttons, first in the bar.
func (a *App) toolbarView() string {
	buttons := toolbarButtonStyle.Render("😊 emoji") + toolbarButtonStyle.Render("⚙ manage")
	title := toolbarStyle.Render("emopick")
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons, title)
}
