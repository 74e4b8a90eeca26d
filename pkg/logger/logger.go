package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает настроенный логгер приложения: JSON в stdout,
// временные метки в RFC3339 с миллисекундами.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		// Некорректный уровень не фатален, откатываемся на info
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
