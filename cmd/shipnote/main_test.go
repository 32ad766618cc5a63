package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeReleaseContext(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "context.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write context: %v", err)
	}
	return path
}

func missingConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.toml")
}

func TestPrepareWithoutCredentialsPrintsUnpostedHandle(t *testing.T) {
	contextPath := writeReleaseContext(t, `{"package":"pkg-a","version":"1.2.0","env":{}}`)

	out, err := runCommand(t, "--config", missingConfigPath(t), "prepare", "--context", contextPath)
	if err != nil {
		t.Fatalf("prepare must not fail the pipeline: %v", err)
	}

	var handle struct {
		Posted  bool   `json:"posted"`
		Channel string `json:"channel"`
		TS      string `json:"ts"`
	}
	if err := json.Unmarshal([]byte(out), &handle); err != nil {
		t.Fatalf("decode handle JSON: %v\n%s", err, out)
	}
	if handle.Posted || handle.Channel != "" || handle.TS != "" {
		t.Fatalf("expected an unposted handle, got %+v", handle)
	}
}

func TestFailWithoutHandleIsNoOp(t *testing.T) {
	contextPath := writeReleaseContext(t, `{"package":"pkg-a","version":"1.2.0","env":{}}`)

	out, err := runCommand(t, "--config", missingConfigPath(t), "fail", "--context", contextPath)
	if err != nil {
		t.Fatalf("fail must not fail the pipeline: %v", err)
	}
	if !strings.Contains(out, `"posted": false`) {
		t.Fatalf("expected an unposted result, got:\n%s", out)
	}
}

func TestPrepareRejectsMalformedContext(t *testing.T) {
	contextPath := writeReleaseContext(t, `{"package":`)

	if _, err := runCommand(t, "--config", missingConfigPath(t), "prepare", "--context", contextPath); err == nil {
		t.Fatal("malformed orchestrator input is a caller bug and should error")
	}
}

func TestRenderSuccessPreview(t *testing.T) {
	contextPath := writeReleaseContext(t, `{
		"package": "pkg-a",
		"version": "1.2.0",
		"branch": "main",
		"artifacts": [
			{"name": "npm", "url": "https://npm/x"},
			{"name": "cdn", "url": "https://cdn/x"}
		],
		"env": {}
	}`)

	out, err := runCommand(t, "--config", missingConfigPath(t), "render", "--context", contextPath, "--status", "success")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "pkg-a v1.2.0 - Released") {
		t.Fatalf("missing fallback line:\n%s", out)
	}
	if !strings.Contains(out, "Links: <https://cdn/x|cdn> | <https://npm/x|npm>") {
		t.Fatalf("missing reversed links line:\n%s", out)
	}
}

func TestRenderRejectsUnknownStatus(t *testing.T) {
	contextPath := writeReleaseContext(t, `{"package":"pkg-a","env":{}}`)

	if _, err := runCommand(t, "--config", missingConfigPath(t), "render", "--context", contextPath, "--status", "bogus"); err == nil {
		t.Fatal("expected an error for an unknown status")
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected target path in output:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample not written: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected an error without --overwrite")
	}
}

func TestConfigShowRendersResolvedValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	contents := "[slack]\nchannel = \"C9\"\n\n[artifacts]\ncategories = [\"npm\"]\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCommand(t, "config", "show", "--path", configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "C9") || !strings.Contains(out, "npm") {
		t.Fatalf("missing resolved values:\n%s", out)
	}
}
