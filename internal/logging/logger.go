package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimeFormat is the timestamp layout used on every log line.
const TimeFormat = "2006-01-02 15:04:05"

// Options describes logger construction parameters.
type Options struct {
	Level string
	// File, when set, receives a copy of every line through a rotating writer.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	// Console is the terminal-side writer. Nil means stderr; pass io.Discard
	// for a detached process that only logs to File.
	Console io.Writer
}

// New builds a logger from opts. The returned closer flushes and closes the
// log file; it is a no-op when no file is configured.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var (
		w      io.Writer = console
		closer io.Closer = nopCloser{}
	)
	if strings.TrimSpace(opts.File) != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("ensure log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		closer = lj
		if console == io.Discard {
			w = lj
		} else {
			w = io.MultiWriter(console, lj)
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
	})
	logger.SetStyles(styles())
	return logger, closer, nil
}

// Discard returns a logger that drops everything. Used as the zero value
// by components constructed without a logger.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// ParseLevel maps a config string to a log level. Empty means info.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return log.InfoLevel, nil
	case "warning":
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level: unsupported value %q", level)
	}
	return lvl, nil
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Keys["game"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	s.Values["game"] = lipgloss.NewStyle().Bold(true)
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	s.Values["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	return s
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
