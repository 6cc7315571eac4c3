package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/folio/internal/content"
)

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// contentReloadedMsg carries a freshly parsed portfolio or the reason it
// could not be read.
type contentReloadedMsg struct {
	portfolio *content.Portfolio
	err       error
}

func (m *Model) startWatching(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	path = filepath.Clean(path)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}

	// Editors often replace the file on save, so the directory is watched.
	dir := filepath.Dir(path)
	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return nil
		}
		m.watchDir = dir
	}

	m.watchedFile = path
	m.logger.Info("watching content", "path", path)
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)
	m.watchDone = make(chan struct{})

	go watchLoop(watcher, m.watchChan, m.watchDone)
	return nil
}

// watchLoop forwards watcher events to out until the watcher closes or done
// is closed. A send blocked on a full out channel also ends at done.
func watchLoop(watcher *fsnotify.Watcher, out chan<- tea.Msg, done <-chan struct{}) {
	for {
		var msg tea.Msg
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			msg = fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			msg = fileWatchErrMsg{err: err}
		}

		select {
		case out <- msg:
		case <-done:
			return
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	ch := m.watchChan
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.watchedFile == "" || filepath.Clean(msg.path) != m.watchedFile {
		return m.waitForFileEvent()
	}
	m.logger.Debug("content changed", "path", msg.path, "op", msg.op.String())
	return tea.Batch(m.reloadContent(), m.waitForFileEvent())
}

func (m *Model) reloadContent() tea.Cmd {
	path := m.contentPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		p, err := content.Load(path)
		return contentReloadedMsg{portfolio: p, err: err}
	}
}

// applyReload swaps in reloaded content. Navigation and theme are untouched;
// on error the previous content stays on screen.
func (m *Model) applyReload(msg contentReloadedMsg) tea.Cmd {
	if msg.err != nil {
		m.err = msg.err
		m.logger.Warn("content reload failed", "err", msg.err)
		return nil
	}
	m.err = nil
	m.portfolio = msg.portfolio.WithTech(m.techFilter)
	m.logger.Info("content reloaded", "projects", len(m.portfolio.Projects))
	return m.rerender()
}
