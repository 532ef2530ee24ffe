package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("warn")

	Debug("hidden debug", "key", "value")
	Info("hidden info")
	Warn("visible warning", "run_id", "abc")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info to be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "visible warning") || !strings.Contains(out, "run_id=abc") {
		t.Errorf("Expected warning with fields, got %q", out)
	}
}

func TestSetLevelDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("DEBUG")
	defer SetLevel("warn")

	Debug("stage entered", "state", "uploading")
	if !strings.Contains(buf.String(), "stage entered") {
		t.Errorf("Expected debug output, got %q", buf.String())
	}
}

func TestSetLevelUnknownFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("chatty")

	Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}
