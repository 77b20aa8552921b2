package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupStderrLevels(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Stderr: &buf})
	require.NoError(t, err)

	L().Debug("hidden")
	L().Info("shown", "k", 1)
	require.NoError(t, cleanup())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "k=1")

	// after cleanup the logger discards
	L().Info("after")
	assert.NotContains(t, buf.String(), "after")
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lagoon.log")
	cleanup, err := Setup(Config{Path: path, Debug: true})
	require.NoError(t, err)

	L().Debug("painted", "bands", 3)
	require.NoError(t, cleanup())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"painted"`)
	assert.Contains(t, string(b), `"bands":3`)
}

func TestSetupTwiceClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	firstCleanup, err := Setup(Config{Path: filepath.Join(dir, "first.log")})
	require.NoError(t, err)
	first := logFile

	secondCleanup, err := Setup(Config{Path: filepath.Join(dir, "second.log")})
	require.NoError(t, err)

	_, err = first.WriteString("late\n")
	assert.ErrorIs(t, err, os.ErrClosed)

	// the superseded cleanup must leave the active logger alone
	require.NoError(t, firstCleanup())
	L().Info("still.here")
	require.NoError(t, secondCleanup())

	b, err := os.ReadFile(filepath.Join(dir, "second.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "still.here")
}
