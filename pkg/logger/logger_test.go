package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zap.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zap.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zap.InfoLevel, ParseLevel(""))
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		log, err := NewLogger("debug", env)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zap.DebugLevel))
	}
}
