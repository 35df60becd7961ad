package beamgrid

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var logger = NewLogger(os.Stderr, false)

// NewLogger returns a text logger writing to w; debug lowers the level to Debug.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	lvl := slog.LevelInfo
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *slog.Logger { return logger }

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		logger.Debug(fmt.Sprintf(format, args...))
	})
}
