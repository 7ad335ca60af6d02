package obslog_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfstdecode/internal/obslog"
)

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	require := require.New(t)
	logger, err := obslog.Init("not-a-level", "")
	require.NoError(err)
	require.False(logger.Enabled(context.Background(), slog.LevelDebug))
	require.True(logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestInit_DebugLevelEnablesDebugLogs(t *testing.T) {
	require := require.New(t)
	logger, err := obslog.Init("debug", "")
	require.NoError(err)
	require.True(logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestInit_AlsoWritesToLogFile(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "decode.log")

	logger, err := obslog.Init("info", path)
	require.NoError(err)
	logger.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(err)
	require.Contains(string(data), "hello")
}

func TestInit_RejectsUnwritableLogFile(t *testing.T) {
	_, err := obslog.Init("info", filepath.Join(t.TempDir(), "missing-dir", "decode.log"))
	require.Error(t, err)
}
