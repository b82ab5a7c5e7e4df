package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func capture(t *testing.T, level, format string) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetupWriter(&buf, level, format)
	return &buf
}

func TestSetupWriter_JSONWithRunID(t *testing.T) {
	buf := capture(t, "info", "json")

	ctx, id := NewRunContext(context.Background())
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("run ID %q is not a UUID: %v", id, err)
	}
	if RunID(ctx) != id {
		t.Errorf("RunID() = %q, want %q", RunID(ctx), id)
	}

	WithFields(ctx, "file", "1").Info("generated metadata file")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["run_id"] != id {
		t.Errorf("run_id = %v, want %s", entry["run_id"], id)
	}
	if entry["file"] != "1" {
		t.Errorf("file = %v, want 1", entry["file"])
	}
	if entry["msg"] != "generated metadata file" {
		t.Errorf("msg = %v", entry["msg"])
	}
}

func TestFromContext_NoRunID(t *testing.T) {
	buf := capture(t, "info", "text")

	FromContext(context.Background()).Info("hello")
	if strings.Contains(buf.String(), "run_id") {
		t.Errorf("unexpected run_id in %q", buf.String())
	}
}

func TestSetupWriter_Level(t *testing.T) {
	buf := capture(t, "warn", "text")

	slog.Info("hidden")
	slog.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
