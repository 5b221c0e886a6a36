package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"renumber/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = ""
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "renumber.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
}

func TestLogger_FileSinkIsPlain(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	cfg.LogFile = filepath.Join(dir, "renumber.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Warn("colored on screen")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if bytes.Contains(b, []byte("\033[")) {
		t.Errorf("file sink must not contain ANSI escapes: %q", string(b))
	}
}
