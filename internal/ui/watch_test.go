package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchLoopStopsWhileSendIsBlocked(t *testing.T) {
	dir := t.TempDir()
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()
	require.NoError(t, watcher.Add(dir))

	out := make(chan tea.Msg)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		watchLoop(watcher, out, done)
		close(finished)
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "portfolio.md"), []byte("---\nname: A\n---\n"), 0o600))
	time.Sleep(100 * time.Millisecond)
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("watch loop still running after done was closed")
	}
}

func TestCloseStopsWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.md")
	require.NoError(t, os.WriteFile(path, []byte("---\nname: A\n---\n"), 0o600))

	m := NewModel(State{ContentPath: path, Watch: true})
	require.NotNil(t, m.Init())
	require.NotNil(t, m.watchDone)

	m.Close()
	assert.Nil(t, m.watchDone)
	assert.Nil(t, m.watcher)
}
