package logger

import (
	"github.com/sirupsen/logrus"
)

// New builds the process logger: JSON output, level from config with
// info as the fallback.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
