package release

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Artifact describes one published release output, typically a registry or
// CDN location produced by a publish step.
type Artifact struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Context carries the release metadata the orchestrator supplies for one
// release run. It is read-only input; the notifier never mutates it.
type Context struct {
	Package       string            `json:"package"`
	Version       string            `json:"version,omitempty"`
	Branch        string            `json:"branch,omitempty"`
	RepositoryURL string            `json:"repositoryUrl,omitempty"`
	CommitSHA     string            `json:"commitSha,omitempty"`
	PullRequest   string            `json:"pullRequest,omitempty"`
	Artifacts     []Artifact        `json:"artifacts,omitempty"`
	Env           map[string]string `json:"env,omitempty"`
}

// Parse decodes a release context from JSON and normalizes its fields.
func Parse(r io.Reader) (*Context, error) {
	decoder := json.NewDecoder(r)
	var ctx Context
	if err := decoder.Decode(&ctx); err != nil {
		return nil, fmt.Errorf("decode release context: %w", err)
	}
	ctx.normalize()
	if ctx.Package == "" {
		return nil, errors.New("release context: package name is required")
	}
	return &ctx, nil
}

// LoadFile reads a release context from the given path, or from stdin when
// the path is "-".
func LoadFile(path string) (*Context, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open release context: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

func (c *Context) normalize() {
	c.Package = strings.TrimSpace(c.Package)
	c.Version = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(c.Version), "v"))
	c.Branch = strings.TrimSpace(c.Branch)
	c.RepositoryURL = strings.TrimSpace(c.RepositoryURL)
	c.CommitSHA = strings.TrimSpace(c.CommitSHA)
	c.PullRequest = strings.TrimSpace(c.PullRequest)
}

// EnsureEnv fills the environment mapping from the supplied snapshot when the
// context did not carry one. An empty but non-nil mapping is left alone so
// callers can deliberately run without ambient environment.
func (c *Context) EnsureEnv(environ []string) {
	if c.Env != nil {
		return
	}
	c.Env = make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			continue
		}
		c.Env[key] = value
	}
}

// EnvValue returns the first non-empty environment value among keys.
func (c *Context) EnvValue(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(c.Env[key]); value != "" {
			return value
		}
	}
	return ""
}

// Token returns the Slack authentication token from the environment mapping.
func (c *Context) Token() string {
	return c.EnvValue("SLACK_TOKEN", "SLACK_BOT_TOKEN")
}

// Channel returns the destination channel from the environment mapping.
func (c *Context) Channel() string {
	return c.EnvValue("SLACK_CHANNEL", "SLACK_CHANNEL_ID")
}

// DisplayVersion returns the version prefixed with "v", or an empty string
// while the version is still unknown.
func (c *Context) DisplayVersion() string {
	if c.Version == "" {
		return ""
	}
	return "v" + c.Version
}
