package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProdStage switches the logger to JSON output.
const ProdStage = "prod"

// Log is the global logger instance. It is a no-op logger until InitLogger runs.
var Log = zap.NewNop()

// Config holds configuration for the logger.
type Config struct {
	Level   string
	Stage   string
	Service string
}

// InitLogger initializes the global logger for the given stage and service.
func InitLogger(stage, service string) {
	Log = New(Config{
		Level:   getEnv("LOG_LEVEL", "info"),
		Stage:   stage,
		Service: service,
	})
}

// New builds a logger without touching the global one.
func New(cfg Config) *zap.Logger {
	level := parseLevel(cfg.Level)

	var zapConfig zap.Config
	if cfg.Stage == ProdStage {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.MessageKey = "message"
		zapConfig.InitialFields = map[string]interface{}{
			"service": cfg.Service,
			"stage":   cfg.Stage,
		}
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.DisableStacktrace = cfg.Stage == ProdStage && level > zapcore.DebugLevel

	l, err := zapConfig.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return l
}

// Sync flushes any buffered log entries.
func Sync() error {
	return Log.Sync()
}

func parseLevel(raw string) zapcore.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
