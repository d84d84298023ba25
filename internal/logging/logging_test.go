package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_DefaultSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(false, &buf)

	logger.Debug("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message leaked: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("expected warning in output, got %q", out)
	}
}

func TestNew_DebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := New(true, &buf)

	logger.Debug("visible")
	_ = logger.Sync()

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected debug message, got %q", buf.String())
	}
}
