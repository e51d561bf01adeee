package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	logger, level, err := New()
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.Equal(t, zap.InfoLevel, level.Level())
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))

	level.SetLevel(zap.DebugLevel)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}
