package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shortlink.log")
	logger, err := New(path)
	require.NoError(t, err)

	logger.Debug("shorten submitted", zap.Uint64("gen", 7))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"shorten submitted"`)
	assert.Contains(t, string(data), `"gen":7`)
}

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New("")
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("dropped")
}
