package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", tmpDir)
		t.Setenv("LOCALAPPDATA", filepath.Join(tmpDir, "AppData", "Local"))
	}
	return tmpDir
}

func TestLogFilePath(t *testing.T) {
	appName := "accordeon-demo"
	logPath, err := logFilePath(appName)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(logPath), "log path should be absolute")

	homeDir, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, filepath.Join(homeDir, "Library", "Logs", appName, appName+".log"), logPath)
	case "linux":
		assert.Equal(t, filepath.Join(homeDir, ".local", "state", appName, appName+".log"), logPath)
	}
}

func TestInitLogger(t *testing.T) {
	overrideHome(t)

	tests := []struct {
		name  string
		debug bool
	}{
		{"info level", false},
		{"debug level", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := InitLogger("accordeon-test", tt.debug)
			require.NoError(t, err)
			require.NotNil(t, logger)

			logPath, _ := logFilePath("accordeon-test")
			_, err = os.Stat(logPath)
			assert.NoError(t, err, "log file should exist after init")

			logger.Info("test message", slog.String("key", "value"))
			logger.Debug("debug message")
		})
	}
}

func TestInitLogger_CreatesDirectory(t *testing.T) {
	overrideHome(t)

	_, err := InitLogger("accordeon-test", false)
	require.NoError(t, err)

	logPath, _ := logFilePath("accordeon-test")
	info, err := os.Stat(filepath.Dir(logPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRotateIfNeeded(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Below the threshold: nothing moves.
	require.NoError(t, os.WriteFile(logPath, []byte("small"), 0644))
	require.NoError(t, rotateIfNeeded(logPath))
	_, err := os.Stat(logPath + ".1")
	assert.True(t, os.IsNotExist(err), "small file must not rotate")

	// At the threshold: current file becomes backup .1.
	big := make([]byte, maxLogSize)
	require.NoError(t, os.WriteFile(logPath, big, 0644))
	require.NoError(t, rotateIfNeeded(logPath))

	_, err = os.Stat(logPath)
	assert.True(t, os.IsNotExist(err), "current file should have been renamed")
	_, err = os.Stat(logPath + ".1")
	assert.NoError(t, err, "backup .1 should exist")
}

func TestRotateIfNeeded_MissingFileIsNoOp(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "never-created.log")
	assert.NoError(t, rotateIfNeeded(logPath))
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)

	logger.Info("test info")
	logger.Debug("test debug")
	logger.Warn("test warn")
	logger.Error("test error")
}
