package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/blackwell-systems/shotshelf/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"":        log.InfoLevel,
		"info":    log.InfoLevel,
		"DEBUG":   log.DebugLevel,
		" warn ":  log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	if _, err := logging.ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := logging.New(logging.Options{Level: "info", Console: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("moved", "file", "440_1.png", "game", "Team Fortress 2")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(out, "moved") || !strings.Contains(out, "440_1.png") {
		t.Errorf("missing info line fields: %q", out)
	}
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shotshelf.log")
	var buf bytes.Buffer
	logger, closer, err := logging.New(logging.Options{Level: "debug", File: path, MaxSizeMB: 1, Console: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Warn("skipping file", "file", "notes.txt")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "notes.txt") {
		t.Errorf("log file missing line: %q", string(data))
	}
	if !strings.Contains(buf.String(), "notes.txt") {
		t.Errorf("console missing line: %q", buf.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Level: "chatty"}); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestOrDiscard(t *testing.T) {
	if logging.OrDiscard(nil) == nil {
		t.Fatal("OrDiscard(nil) returned nil")
	}
	l := logging.Discard()
	if logging.OrDiscard(l) != l {
		t.Error("OrDiscard should return the given logger")
	}
}
