package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.quarry.build/quarry/internal/adapters/logger"
)

func TestLogger_InfoWithAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("cache entry written", "job", 3, "key", "00deadbeef00cafe")

	out := buf.String()
	if !strings.Contains(out, "cache entry written") {
		t.Errorf("missing message in output: %q", out)
	}
	if !strings.Contains(out, "job=3") {
		t.Errorf("missing attribute in output: %q", out)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Error(errors.New("store unavailable"))

	if !strings.Contains(buf.String(), "store unavailable") {
		t.Errorf("missing error in output: %q", buf.String())
	}
}
