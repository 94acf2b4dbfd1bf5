package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/emopick/emopick-cli/pkg/store"
)

// newStoreWatcher watches the project directory so CLI mutations made while
// the TUI is open still trigger a picker rebuild.
func newStoreWatcher() (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(store.EmopickDir); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}

// waitForStoreChange blocks until the persisted slot changes, then delivers
// a storeChangedMsg. The App re-issues it after handling each change.
func waitForStoreChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != store.CustomEmojisFile {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
					return storeChangedMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}
