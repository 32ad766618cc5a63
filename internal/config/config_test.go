package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shipnote/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsForMissingFile(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("missing file reported as existing")
	}
	if cfg.Slack.RequestTimeout != 10 {
		t.Fatalf("request timeout = %d, want default 10", cfg.Slack.RequestTimeout)
	}
	if cfg.Logging.Format != "auto" || cfg.Logging.Level != "info" {
		t.Fatalf("logging defaults = %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
	if len(cfg.Artifacts.Categories) != 0 {
		t.Fatalf("expected no default categories, got %v", cfg.Artifacts.Categories)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := writeConfig(t, `
[slack]
channel = "  C777  "
request_timeout = 5
api_url = "https://slack.example.com/api"

[artifacts]
categories = ["NPM", "cdn", "npm", ""]
cdn_base_url = "https://cdn.example.com/packages/"

[logging]
format = "JSON"
level = "Debug"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Slack.Channel != "C777" {
		t.Fatalf("channel = %q", cfg.Slack.Channel)
	}
	if cfg.Slack.APIURL != "https://slack.example.com/api/" {
		t.Fatalf("api url = %q, want trailing slash added", cfg.Slack.APIURL)
	}
	want := []string{"npm", "cdn"}
	if len(cfg.Artifacts.Categories) != len(want) {
		t.Fatalf("categories = %v, want %v", cfg.Artifacts.Categories, want)
	}
	for i, category := range want {
		if cfg.Artifacts.Categories[i] != category {
			t.Fatalf("categories = %v, want %v", cfg.Artifacts.Categories, want)
		}
	}
	if cfg.Artifacts.CDNBaseURL != "https://cdn.example.com/packages" {
		t.Fatalf("cdn base url = %q, want trailing slash trimmed", cfg.Artifacts.CDNBaseURL)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "unknown category",
			contents: "[artifacts]\ncategories = [\"docker\"]\n",
			wantErr:  "unknown category",
		},
		{
			name:     "relative cdn base url",
			contents: "[artifacts]\ncdn_base_url = \"packages\"\n",
			wantErr:  "cdn_base_url",
		},
		{
			name:     "bad log format",
			contents: "[logging]\nformat = \"xml\"\n",
			wantErr:  "logging.format",
		},
		{
			name:     "bad log level",
			contents: "[logging]\nlevel = \"verbose\"\n",
			wantErr:  "logging.level",
		},
		{
			name:     "malformed toml",
			contents: "[slack\n",
			wantErr:  "parse config",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.contents)
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file not found after creation")
	}
	if cfg.Slack.RequestTimeout != 10 {
		t.Fatalf("sample request timeout = %d", cfg.Slack.RequestTimeout)
	}
}
