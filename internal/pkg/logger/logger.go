package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var base = newBase()

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Init configures the process-wide logger. Production gets JSON lines,
// everything else the text formatter.
func Init(level, environment string) {
	if strings.EqualFold(environment, "production") {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
		base.WithField("level", level).Warn("Unknown log level, falling back to info")
	}
	base.SetLevel(parsed)
}

// LogWithContext returns an entry tagged with the component and operation
// that emit it.
func LogWithContext(component, operation string) *logrus.Entry {
	return base.WithFields(logrus.Fields{
		"component": component,
		"operation": operation,
	})
}

// Logger exposes the base logger to libraries that take a printf-style
// logger, such as goose.
func Logger() *logrus.Logger {
	return base
}
