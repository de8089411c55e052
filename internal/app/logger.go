package app

import (
	"github.com/haugsdal/packboard/config"
	"github.com/haugsdal/packboard/internal/logger"
)

// InitializeLogger initializes the global JSON logger.
func InitializeLogger(cfg config.LoggingConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
