package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"shipnote/internal/logging"
)

func TestNewJSONHandlerFieldNames(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buffer})
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}

	logger.Info("posted release notification",
		logging.Args(logging.String(logging.FieldChannel, "C1"))...)

	var entry map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &entry); err != nil {
		t.Fatalf("decode log entry: %v\n%s", err, buffer.String())
	}
	if entry["msg"] != "posted release notification" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Fatalf("level = %v, want lowercased", entry["level"])
	}
	if entry["channel"] != "C1" {
		t.Fatalf("channel = %v", entry["channel"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatal("expected a ts field")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "json", Output: &buffer})
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept")

	logs := buffer.String()
	if strings.Contains(logs, "dropped") {
		t.Fatalf("info line should have been filtered:\n%s", logs)
	}
	if !strings.Contains(logs, "kept") {
		t.Fatalf("warn line missing:\n%s", logs)
	}
}

func TestConsoleHandlerFormatsAttrs(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &buffer})
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}

	logger.With(logging.String("operation", "prepare")).Info("skipping release notification",
		logging.Args(logging.String("reason", "no token set"))...)

	line := buffer.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level: %s", line)
	}
	if !strings.Contains(line, "operation=prepare") {
		t.Fatalf("missing inherited attr: %s", line)
	}
	if !strings.Contains(line, `reason="no token set"`) {
		t.Fatalf("expected quoted multi-word value: %s", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should vanish")

	component := logging.NewComponentLogger(nil, "notify")
	component.Info("also discarded")
}
