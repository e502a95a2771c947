package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAppendsToMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.txt")
	l := New(path)

	l.Log("animation started")
	l.Log("model reset")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "animation started"))
	assert.True(t, strings.HasPrefix(lines[0], "["))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "animation started")
	assert.Contains(t, string(data), "model reset")
}

func TestLinesReturnsCopy(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "log.txt"))
	l.Log("one")

	lines := l.Lines()
	lines[0] = "tampered"
	assert.NotEqual(t, "tampered", l.Lines()[0])
}

func TestLogConcurrent(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "log.txt"))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				l.Log("line")
			}
		}()
	}
	wg.Wait()
	assert.Len(t, l.Lines(), 160)
}
