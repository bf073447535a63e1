// Package logger builds the process-wide zap logger from config.LogConfig.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Jiayao2006/AIVest/internal/config"
)

const serviceName = "aivest-api"

// New returns a logger tagged with the service, deployment env and API version.
// Unknown levels fall back to info and anything other than "json" is rendered
// for the console.
func New(cfg config.LogConfig, env, version string) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			level.SetLevel(zapcore.InfoLevel)
		}
	}

	zc := zap.Config{
		Level:             level,
		Development:       cfg.Development,
		Encoding:          "console",
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       outputPaths(cfg.OutputPaths),
		ErrorOutputPaths:  []string{"stderr"},
	}

	if cfg.Encoding == "json" {
		zc.Encoding = "json"
		zc.EncoderConfig = zap.NewProductionEncoderConfig()
		zc.EncoderConfig.TimeKey = "time"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
	}

	if cfg.Sampling {
		zc.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}

	fields := []zap.Field{zap.String("service", serviceName)}
	if env != "" {
		fields = append(fields, zap.String("env", env))
	}
	if version != "" {
		fields = append(fields, zap.String("version", version))
	}

	return zc.Build(zap.Fields(fields...))
}

func outputPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"stdout"}
	}
	return out
}
