package dbg

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// NewLogger builds the logger for env. Development logs are human readable
// at debug level, production logs are JSON at info level.
func NewLogger(env string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case EnvDevelopment, "":
		cfg = zap.NewDevelopmentConfig()
	case EnvProduction:
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log environment %q", env)
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true

	return cfg.Build()
}
