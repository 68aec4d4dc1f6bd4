package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FIREWORKS_TEST_STR", "hello")
	if got := GetEnv("FIREWORKS_TEST_STR", "x"); got != "hello" {
		t.Errorf("GetEnv = %q, want hello", got)
	}
	if got := GetEnv("FIREWORKS_TEST_UNSET", "x"); got != "x" {
		t.Errorf("GetEnv unset = %q, want x", got)
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("FIREWORKS_TEST_INT", "42")
	t.Setenv("FIREWORKS_TEST_BAD", "nope")
	t.Setenv("FIREWORKS_TEST_BOOL", "true")
	t.Setenv("FIREWORKS_TEST_DUR", "250ms")
	t.Setenv("FIREWORKS_TEST_SEED", "9007199254740993")

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"int", GetEnvInt("FIREWORKS_TEST_INT", 1), 42},
		{"int bad", GetEnvInt("FIREWORKS_TEST_BAD", 1), 1},
		{"int unset", GetEnvInt("FIREWORKS_TEST_UNSET", 7), 7},
		{"int64", GetEnvInt64("FIREWORKS_TEST_SEED", 0), int64(9007199254740993)},
		{"bool", GetEnvBool("FIREWORKS_TEST_BOOL", false), true},
		{"bool bad", GetEnvBool("FIREWORKS_TEST_BAD", true), true},
		{"duration", GetEnvDuration("FIREWORKS_TEST_DUR", time.Second), 250 * time.Millisecond},
		{"duration bad", GetEnvDuration("FIREWORKS_TEST_BAD", time.Second), time.Second},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("Load missing: %v", err)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("FIREWORKS_TEST_LOADED=yes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FIREWORKS_TEST_LOADED", "")
	os.Unsetenv("FIREWORKS_TEST_LOADED")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("FIREWORKS_TEST_LOADED"); got != "yes" {
		t.Errorf("FIREWORKS_TEST_LOADED = %q, want yes", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "fireworks") {
		t.Errorf("warn line missing or unprefixed: %q", out)
	}
}

func TestOpenLogFileEmptyDiscards(t *testing.T) {
	w, closeFn, err := OpenLogFile("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("x")); err != nil {
		t.Errorf("write: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}
}
