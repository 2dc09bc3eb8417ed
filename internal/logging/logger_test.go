package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)
	log.Info("record failed", "error", "disk full")
	out := buf.String()
	if !strings.Contains(out, "err=\"disk full\"") {
		t.Errorf("expected err key in %q", out)
	}
	if strings.Contains(out, "error=") {
		t.Errorf("error key should be renamed in %q", out)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %q", buf.String())
	}
}
