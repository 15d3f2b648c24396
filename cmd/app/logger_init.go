package main

import (
	"github.com/osse101/alion/internal/config"
	"github.com/osse101/alion/internal/logger"
)

// initLogger installs a stdout-only logger when no log directory is configured
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	logger.InitLogger(loggerConfig)
}
