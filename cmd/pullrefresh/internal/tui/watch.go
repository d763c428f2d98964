package tui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce absorbs the burst of events editors emit on save.
const reloadDebounce = 100 * time.Millisecond

type configChangedMsg struct{}

type watchErrMsg struct{ err error }

// watchConfig waits for the next change to the file named path. The
// watcher must already watch path's directory; editors that save by
// rename replace the file, so watching the file itself loses track.
func watchConfig(watcher *fsnotify.Watcher, path string) tea.Cmd {
	name := filepath.Base(path)
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				time.Sleep(reloadDebounce)
			drain:
				for {
					select {
					case _, ok := <-watcher.Events:
						if !ok {
							break drain
						}
					default:
						break drain
					}
				}
				return configChangedMsg{}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}
