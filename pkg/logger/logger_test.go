package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInitAndLevelString(t *testing.T) {
	Init("debug")
	if got := LevelString(); got != "debug" {
		t.Fatalf("LevelString() = %q, want %q", got, "debug")
	}
	Init("WARN")
	if got := LevelString(); got != "warn" {
		t.Fatalf("LevelString() = %q, want %q", got, "warn")
	}
	Init("nonsense")
	if got := LevelString(); got != "info" {
		t.Fatalf("LevelString() = %q, want %q for unknown input", got, "info")
	}
}

func TestLevelFiltering(t *testing.T) {
	// capture output by replacing the package writer
	var buf bytes.Buffer
	orig := out
	out = log.New(&buf, "", 0)
	defer func() { out = orig }()

	Init("warn")
	Debugf("debug-msg")
	Infof("info-msg")
	Warnf("warn-msg")
	Errorf("error-msg")

	s := buf.String()
	if strings.Contains(s, "debug-msg") {
		t.Fatalf("debug messages should be suppressed at warn level")
	}
	if strings.Contains(s, "info-msg") {
		t.Fatalf("info messages should be suppressed at warn level")
	}
	if !strings.Contains(s, "warn-msg") {
		t.Fatalf("warn message missing: %q", s)
	}
	if !strings.Contains(s, "error-msg") {
		t.Fatalf("error message missing: %q", s)
	}

	// back at info level the info message appears with its level tag
	Init("info")
	buf.Reset()
	Info("hello")
	if !strings.Contains(buf.String(), "[INFO]") || !strings.Contains(buf.String(), "hello") {
		t.Fatalf("info output unexpected: %q", buf.String())
	}
}
