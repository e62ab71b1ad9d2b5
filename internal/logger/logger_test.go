package logger_test

import (
	"testing"

	"github.com/denismitr/intset/internal/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	t.Run("debug level", func(t *testing.T) {
		log := logger.NewLogger(true)
		assert.True(t, log.Core().Enabled(zap.DebugLevel))
	})

	t.Run("info level", func(t *testing.T) {
		log := logger.NewLogger(false)
		assert.False(t, log.Core().Enabled(zap.DebugLevel))
		assert.True(t, log.Core().Enabled(zap.InfoLevel))
	})
}
