package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"egrulfill/internal/logging"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hello",
		logging.String(logging.FieldSheet, "Лист1"),
		logging.Duration("elapsed", 1500*time.Millisecond))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "hello" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry[logging.FieldSheet] != "Лист1" {
		t.Fatalf("unexpected sheet attr: %v", entry[logging.FieldSheet])
	}
	if _, ok := entry["elapsed"]; !ok {
		t.Fatalf("expected elapsed attr, got %q", buf.String())
	}
}

func TestNewConsoleFormatDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug suppressed at default level, got %q", buf.String())
	}

	logger.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected info output, got %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewComponentLoggerNilBase(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "resolver")
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	logger.Info("must not panic")
}
