package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in).Level(); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "debug", "JSON").Debug("hello", "pool", "0x01")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"pool":"0x01"`) {
		t.Fatalf("expected json output, got %q", buf.String())
	}

	buf.Reset()
	newLogger(&buf, "warn", "").Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	newLogger(&buf, "warn", "").Warn("kept")
	if !strings.Contains(buf.String(), "msg=kept") {
		t.Fatalf("expected text output, got %q", buf.String())
	}
}
