package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	// Default to production config until Init is called with an environment.
	l, _ := zap.NewProduction()
	sugar = l.Sugar()
}

// Init replaces the default logger according to the runtime environment.
func Init(environment string) error {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)
	sugar = l.Sugar()
	return nil
}

// Info logs a message with optional alternating key/value pairs.
func Info(msg string, keysAndValues ...any) {
	sugar.Infow(msg, normalize(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...any) {
	sugar.Warnw(msg, normalize(keysAndValues)...)
}

// Error accepts either alternating key/value pairs or a bare error value,
// so call sites can write logger.Error("Repo:Method", err).
func Error(msg string, keysAndValues ...any) {
	sugar.Errorw(msg, normalize(keysAndValues)...)
}

func Sync() {
	_ = sugar.Sync()
}

// normalize tolerates a trailing bare error (odd-length argument lists).
func normalize(kv []any) []any {
	if len(kv)%2 == 1 {
		if err, ok := kv[len(kv)-1].(error); ok {
			return append(kv[:len(kv)-1], "error", err)
		}
		return append(kv, "(missing)")
	}
	return kv
}
