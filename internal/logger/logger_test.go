package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		t.Run(lvl, func(t *testing.T) {
			err := Initialize(lvl)
			assert.NoError(t, err)
			assert.IsType(t, &zap.SugaredLogger{}, Log)

			assert.NotPanics(t, func() {
				Log.Infow("quote computed", "level", lvl)
				Sync()
			})
		})
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("loud")
	assert.Error(t, err)
	assert.Equal(t, originalLog, Log, "logger must stay untouched on error")
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Warnw("nop logger test")
	})
}
