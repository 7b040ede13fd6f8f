package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(LevelInfo, &buf).Named("footballapi")

	logger.Warn("request failed", "path", "/api/leagues", "error", errors.New("boom"))
	_ = logger.Sync()

	line := buf.String()
	for _, want := range []string{`"msg":"request failed"`, `"path":"/api/leagues"`, `"error":"boom"`, `"logger":"footballapi"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in log line %s", want, line)
		}
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(LevelWarn, &buf)
	logger.Info("ignored")
	if buf.Len() != 0 {
		t.Fatalf("expected info entry to be dropped, got %s", buf.String())
	}
}

func TestZapFields_OddArgsKeepsTrailingKey(t *testing.T) {
	t.Parallel()

	fields := zapFields([]any{"a", 1, "dangling"})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[1].Key != "dangling" {
		t.Fatalf("unexpected trailing key %q", fields[1].Key)
	}
}
