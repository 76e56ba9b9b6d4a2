package config

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// NamedLogger creates named package logger.
func NamedLogger(name string) *logrus.Logger {
	return &logrus.Logger{
		Out: os.Stderr,
		Formatter: &CustomTextFormatter{
			name: name,
			TextFormatter: logrus.TextFormatter{
				ForceColors: true,
			},
		},
		Hooks: make(logrus.LevelHooks),
		Level: loggingLevel(),
	}
}

func loggingLevel() logrus.Level {
	if level, err := logrus.ParseLevel(os.Getenv("MOLEXA_LOG_LEVEL")); err == nil {
		return level
	}
	if DEVEnv {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// CustomTextFormatter annotates every entry with the logger name and the
// calling file and line.
type CustomTextFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	_, file, no, _ := runtime.Caller(5)
	entry.Message = fmt.Sprintf("[%s][%-15s:%03d] %s", f.name, path.Base(file), no, entry.Message)
	return f.TextFormatter.Format(entry)
}
