package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// NamedLogger creates a package logger whose entries carry the package name.
func NamedLogger(name string) logrus.Logger {
	return logrus.Logger{
		Out: os.Stderr,
		Formatter: &prefixedTextFormatter{
			name:          name,
			TextFormatter: logrus.TextFormatter{ForceColors: true},
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.DebugLevel,
	}
}

type prefixedTextFormatter struct {
	name string
	logrus.TextFormatter
}

// Format renders a single log entry.
func (f *prefixedTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Message = fmt.Sprintf("[%-10s] %s", f.name, entry.Message)
	return f.TextFormatter.Format(entry)
}
