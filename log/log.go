package log

import (
	"io"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

var (
	base     *log.Logger
	baseOnce sync.Once
)

// Base returns the process-wide logrus logger every module logger hangs off.
func Base() *log.Logger {
	baseOnce.Do(func() {
		base = log.New()
		base.SetFormatter(&log.TextFormatter{
			DisableColors:    false,
			DisableTimestamp: false,
		})
		base.SetOutput(os.Stderr)
		base.SetLevel(log.WarnLevel)
	})
	return base
}

func NewLogger(module string) *Logger {
	baselogger := Base().WithFields(
		log.Fields{
			"name": module,
		})
	return &Logger{baselogger}
}

// SetLevel parses a level name ("debug", "warn", ...) and applies it to the base logger.
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	Base().SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	Base().SetOutput(w)
}
