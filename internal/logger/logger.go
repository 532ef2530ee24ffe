package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
	mu            sync.RWMutex
)

// Init initializes the default logger with a console writer on os.Stderr.
// Stdout is reserved for the command result. Only the first call has effect.
func Init() {
	once.Do(func() {
		mu.Lock()
		defaultLogger = newLogger(os.Stderr, zerolog.WarnLevel)
		mu.Unlock()
	})
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: w != os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// SetOutput replaces the destination of the default logger, keeping its level.
func SetOutput(w io.Writer) {
	Init()
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = newLogger(w, defaultLogger.GetLevel())
}

// SetLevel parses level ("debug", "info", "warn", "error") and applies it.
// Unknown values fall back to warn.
func SetLevel(level string) {
	Init()
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = defaultLogger.Level(lvl)
}

// Get returns the initialized default logger.
func Get() *zerolog.Logger {
	Init()
	mu.RLock()
	defer mu.RUnlock()
	l := defaultLogger
	return &l
}

// Info logs an informational message with key/value pairs.
func Info(msg string, args ...any) {
	Get().Info().Fields(args).Msg(msg)
}

// Warn logs a warning message with key/value pairs.
func Warn(msg string, args ...any) {
	Get().Warn().Fields(args).Msg(msg)
}

// Debug logs a debug message with key/value pairs.
func Debug(msg string, args ...any) {
	Get().Debug().Fields(args).Msg(msg)
}
