package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
}

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "showroom.txt")
	l := New(path)
	l.now = fixedClock

	l.Log("scene initialized")
	l.Logf("showing products for category: %s", "decor")

	assert.Equal(t, []string{
		"[2026-10-14 09:30:00] scene initialized",
		"[2026-10-14 09:30:00] showing products for category: decor",
	}, l.Lines())
	assert.Equal(t, "[2026-10-14 09:30:00] showing products for category: decor", l.Last())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestEcho(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "log.txt"))
	l.now = fixedClock
	var buf bytes.Buffer
	l.SetEcho(&buf)
	l.Log("hello")
	assert.Equal(t, "[2026-10-14 09:30:00] hello\n", buf.String())
}

func TestHistoryIsBounded(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "log.txt"))
	for i := 0; i < maxLines+10; i++ {
		l.Log(fmt.Sprint(i))
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "] 10"))
}

func TestUnwritablePathIsIgnored(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	l := New(filepath.Join(blocker, "log.txt"))
	assert.NotPanics(t, func() { l.Log("still works") })
	assert.Len(t, l.Lines(), 1)
	assert.Empty(t, New(filepath.Join(dir, "x.txt")).Last())
}
