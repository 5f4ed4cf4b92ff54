package log

import (
	"os"
	"sync"

	cblog "github.com/charmbracelet/log"
)

var (
	logger *cblog.Logger
	once   sync.Once
)

// GetLogger returns the process-wide logger, creating it on first use.
func GetLogger() *cblog.Logger {
	once.Do(func() {
		logger = cblog.NewWithOptions(os.Stderr, cblog.Options{
			ReportTimestamp: false,
			Prefix:          "switcher",
			Level:           cblog.InfoLevel,
		})
	})
	return logger
}

// SetLevel accepts debug, info, warn, error or fatal.
func SetLevel(level string) error {
	lvl, err := cblog.ParseLevel(level)
	if err != nil {
		return err
	}
	GetLogger().SetLevel(lvl)
	return nil
}

func Debugf(format string, args ...interface{}) {
	GetLogger().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	GetLogger().Warnf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	GetLogger().Fatalf(format, args...)
}
