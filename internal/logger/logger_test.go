package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directdb/directdb/internal/logger"
)

func TestLogger_Levels(t *testing.T) {
	buf := new(bytes.Buffer)
	l := logger.New(buf, logger.LevelInfo)

	l.Debug("hidden")
	l.Info("connected")
	l.Warnf("slow query: %dms", 1200)
	l.Errorf("%s error | %s", "insert", "duplicate key")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.True(t, strings.HasSuffix(lines[0], "[info]: connected"))
	assert.True(t, strings.HasSuffix(lines[1], "[warn]: slow query: 1200ms"))
	assert.True(t, strings.HasSuffix(lines[2], "[error]: insert error | duplicate key"))
	assert.NotContains(t, buf.String(), "hidden")
}

func TestLogger_Nop(t *testing.T) {
	l := logger.Nop()

	// must not panic or write anywhere
	l.Error("nothing")
	l.Debugf("nothing %d", 1)
}

func TestLogger_OpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directdb.log")

	l, closer, err := logger.OpenFile(path, logger.LevelDebug)
	require.NoError(t, err)

	l.Debug("first")
	require.NoError(t, closer.Close())

	l, closer, err = logger.OpenFile(path, logger.LevelDebug)
	require.NoError(t, err)
	l.Info("second")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[debug]: first")
	assert.Contains(t, string(content), "[info]: second")
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "debug", logger.LevelDebug.String())
	assert.Equal(t, "error", logger.LevelError.String())
	assert.Equal(t, "unknown", logger.Level(42).String())
}
