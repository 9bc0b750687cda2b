// Package logging builds the process logger from configuration.
package logging

import (
	"github.com/sirupsen/logrus"

	"rwescore/internal/config"
)

// NewLogger creates a logrus logger configured per the logging section.
// Unknown levels fall back to info and unknown formats to text.
func NewLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
