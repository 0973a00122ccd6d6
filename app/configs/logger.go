package configs

import (
	"os"

	"github.com/sirupsen/logrus"
)

func NewLogger(env ENV) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if env.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		logger.WithField("level", env.LogLevel).Warn("unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
