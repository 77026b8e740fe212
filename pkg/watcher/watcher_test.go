package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDebouncesWrites(t *testing.T) {
	file := filepath.Join(t.TempDir(), "session.path")
	require.NoError(t, os.WriteFile(file, []byte("click v0\n"), 0o644))

	fw, err := NewFileWatcher(100 * time.Millisecond)
	require.NoError(t, err)

	var calls atomic.Int32
	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{file}, func(name string) {
		calls.Add(1)
		changed <- name
	}))
	fw.Start()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(file, []byte("click v1\n"), 0o644))
	}

	select {
	case name := <-changed:
		abs, _ := filepath.Abs(file)
		assert.Equal(t, abs, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	require.NoError(t, fw.Close())
	select {
	case <-fw.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("event loop still running")
	}
}

func TestWatchMissingFile(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	assert.Error(t, fw.Watch([]string{filepath.Join(t.TempDir(), "nope")}, func(string) {}))
}
