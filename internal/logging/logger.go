// Package logging provides the leveled, optionally colored run logger with
// an optional plain-text file sink. It wraps charmbracelet/log and keeps a
// printf-style API so call sites read as one line per event.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/Jstafford98/figmover/internal/config"
	"github.com/Jstafford98/figmover/internal/term"
)

// SuccessLevel sits between info and warn so it is never filtered while
// info is visible.
const SuccessLevel = log.InfoLevel + 2

const timeFormat = "2006-01-02 15:04:05"

// Logger fans each event out to the console (stdout, errors to stderr) and,
// when configured, to an append-only log file tagged with the run id.
type Logger struct {
	mu      sync.Mutex
	out     *log.Logger
	errOut  *log.Logger
	fileLog *log.Logger
	file    *os.File
	runID   string
}

// NewLogger resolves colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stdout, os.Stderr)
}

func newLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	color := term.Configure(cfg.ColorMode)
	l := &Logger{runID: uuid.NewString()[:8]}
	l.out = newSink(stdout, color)
	l.errOut = newSink(stderr, color)

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.fileLog = newSink(f, false).With("run", l.runID)
	}
	return l, nil
}

func newSink(w io.Writer, color bool) *log.Logger {
	sink := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           log.DebugLevel,
		Formatter:       log.TextFormatter,
	})
	if color {
		sink.SetColorProfile(termenv.ANSI256)
	} else {
		sink.SetColorProfile(termenv.Ascii)
	}
	styles := log.DefaultStyles()
	styles.Levels[SuccessLevel] = lipgloss.NewStyle().
		SetString("SUCC").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("42"))
	sink.SetStyles(styles)
	return sink
}

// RunID returns the short per-run identifier written to the log file.
func (l *Logger) RunID() string { return l.runID }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.fileLog = nil
		return err
	}
	return nil
}

func (l *Logger) emit(level log.Level, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level >= log.ErrorLevel {
		l.errOut.Log(level, text)
	} else {
		l.out.Log(level, text)
	}
	if l.fileLog != nil {
		l.fileLog.Log(level, text)
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(log.InfoLevel, fmt.Sprintf(format, args...))
}

// Success logs at SUCC level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.emit(SuccessLevel, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(log.WarnLevel, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(log.ErrorLevel, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.emit(log.DebugLevel, fmt.Sprintf(format, args...))
}
