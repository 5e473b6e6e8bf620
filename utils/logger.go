package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

// InitLogger wires the package-level loggers. Safe to call more than once;
// tests call it from TestMain.
func InitLogger() {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetLevel(logrus.InfoLevel)

	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetLevel(logrus.ErrorLevel)

	if os.Getenv("LOG_FORMAT") == "json" {
		InfoLogger.SetFormatter(&logrus.JSONFormatter{})
		ErrorLogger.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	InfoLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ErrorLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
