package logger

import (
	"io"
	"os"

	"bumpr/internal/core/domain"

	"github.com/sirupsen/logrus"
)

// ProvideLogrusLogger returns the diagnostic logger. It writes to stderr so it
// never mixes with release output. --verbose forces debug level, otherwise
// LOG_LEVEL decides. LOG_FORMAT=json switches to structured output.
func ProvideLogrusLogger(options domain.GlobalOptions) *logrus.Logger {
	return newLogger(options, os.Getenv, os.Stderr)
}

func newLogger(options domain.GlobalOptions, getenv func(string) string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if getenv("LOG_FORMAT") == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}

	if options.Verbose {
		logger.SetLevel(logrus.DebugLevel)
		return logger
	}

	switch getenv("LOG_LEVEL") {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
