package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger used by every layer of the service.
// It discards everything until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize builds a production JSON logger at the given level and tags
// every entry with the service name.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{"service": "gw-remittance"}

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
