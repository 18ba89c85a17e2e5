// Package logging builds the service's zap logger and carries request-scoped
// loggers through the context.
package logging

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/hello-world-api/internal/config"
	"github.com/janisto/hello-world-api/internal/platform/timeutil"
)

// current is the process logger. Until Init runs it holds an info-level
// logger without service fields, so startup errors are still reported.
var current atomic.Pointer[zap.Logger]

// Init builds the process logger from cfg. Every entry carries the service
// version and environment.
func Init(cfg *config.Config, version string) error {
	logger, err := New(cfg, version, zapcore.Lock(os.Stdout))
	if err != nil {
		return err
	}
	current.Store(logger)
	return nil
}

// New returns a logger writing Cloud Logging shaped JSON to out at cfg.LogLevel.
func New(cfg *config.Config, version string, out zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	return newCore(lvl, out).With(
		zap.String("version", version),
		zap.String("environment", cfg.Environment),
	), nil
}

func newCore(lvl zapcore.Level, out zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.EncodeTime = encodeTimeMicros
	enc.LevelKey = "severity"
	enc.EncodeLevel = encodeSeverity
	enc.MessageKey = "message"
	enc.CallerKey = "caller"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), out, lvl)
	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(out))
}

// encodeTimeMicros formats timestamps as RFC 3339 with fixed microsecond precision.
func encodeTimeMicros(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(timeutil.RFC3339Micros))
}

// encodeSeverity maps zap levels to Cloud Logging severity names.
func encodeSeverity(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var severity string
	switch lvl {
	case zapcore.DebugLevel:
		severity = "DEBUG"
	case zapcore.InfoLevel:
		severity = "INFO"
	case zapcore.WarnLevel:
		severity = "WARNING"
	case zapcore.ErrorLevel:
		severity = "ERROR"
	case zapcore.DPanicLevel:
		severity = "CRITICAL"
	case zapcore.PanicLevel:
		severity = "ALERT"
	case zapcore.FatalLevel:
		severity = "EMERGENCY"
	default:
		severity = "DEFAULT"
	}
	enc.AppendString(severity)
}

// Logger returns the process logger.
func Logger() *zap.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	current.CompareAndSwap(nil, newCore(zapcore.InfoLevel, zapcore.Lock(os.Stdout)))
	return current.Load()
}

// Sync flushes buffered log entries. Call during shutdown.
func Sync() error {
	return Logger().Sync()
}
