package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/studiowebux/cloudide/internal/config"
)

// New builds a text logger writing to out at the named level.
// Unknown level names fall back to info.
func New(out io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// OpenFile returns a logger appending to config.LogFile plus a close func.
// The TUI owns stdout and stderr while it runs.
func OpenFile(level string) (*logrus.Logger, func() error, error) {
	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, config.FilePermissions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", config.LogFile, err)
	}
	return New(f, level), f.Close, nil
}

// Stderr returns the quiet logger used by one-shot CLI commands
func Stderr() *logrus.Logger {
	return New(os.Stderr, logrus.WarnLevel.String())
}

// Discard returns a logger that drops everything
func Discard() *logrus.Entry {
	return logrus.NewEntry(New(io.Discard, "panic"))
}
