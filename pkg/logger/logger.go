package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logrus logger writing to stdout.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})

	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // unknown level in config, keep the default
	}
	log.SetLevel(level)
	return log
}
