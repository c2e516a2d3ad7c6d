// Package obslog provides optional structured logging for the engine.
//
// Logging is a no-op until configured, and the common case is a single
// rotating file sink. The sink is built on zap and lumberjack so log
// lines are structured and safe for concurrent use without a
// package-level mutex.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the engine's logging handle. The zero value discards
// everything.
type Logger struct {
	z *zap.Logger
}

// Noop returns a Logger that discards all output.
func Noop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// New wraps an already-configured zap logger.
func New(z *zap.Logger) *Logger {
	if z == nil {
		return Noop()
	}
	return &Logger{z: z}
}

// NewFile builds a Logger backed by a rotating file sink at path.
// maxSizeMB is the size at which lumberjack rotates the file; 0 uses
// lumberjack's default.
func NewFile(path string, maxSizeMB int) *Logger {
	if path == "" {
		path = "layout-debug.log"
	}
	sink := &lumberjack.Logger{
		Filename:  path,
		MaxSize:   maxSizeMB,
		Compress:  true,
		LocalTime: true,
	}
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(sink), zapcore.DebugLevel)
	return &Logger{z: zap.New(core)}
}

// Warn logs a warning-level message, used for conditions like a debug-step
// advance while the step generator is inactive.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.logger().Warn(msg, fields...)
}

// Debug logs a debug-level trace, used sparingly for anchor-resolution
// misses — never on the per-frame layout path.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.logger().Debug(msg, fields...)
}

func (l *Logger) logger() *zap.Logger {
	if l == nil || l.z == nil {
		return zap.NewNop()
	}
	return l.z
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil || l.z == nil {
		return nil
	}
	return l.z.Sync()
}
