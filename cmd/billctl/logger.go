package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type appNameHook struct {
	appName string
}

func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// newLogger writes to stderr so command output on stdout stays parseable.
// The level comes from LOG_LEVEL and defaults to warn.
func newLogger(appName string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "warn"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		l.Warnf("Invalid LOG_LEVEL '%s', defaulting to WARN", levelStr)
		level = logrus.WarnLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.AddHook(&appNameHook{appName})
	return l
}
