package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jask/staydesk/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "staydesk.log")
	logger, err := New(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("search issued", zap.String("query", "lisbon"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"query":"lisbon"`)
	require.Contains(t, string(data), `"logger":"staydesk"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	require.Error(t, err)
}

func TestNewInfoDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staydesk.log")
	logger, err := New(config.LogConfig{Path: path, Level: "info"})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "shown")
}
