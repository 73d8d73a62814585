// Package logging builds the zap loggers used by the frontends.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tomz197/arcade-asteroids/internal/config"
)

// New builds a logger from cfg. With no output paths every entry is dropped,
// which keeps the local terminal game from writing over its own screen.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	if len(cfg.Output) == 0 {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = cfg.Output
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
