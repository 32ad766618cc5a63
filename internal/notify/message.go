package notify

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"shipnote/internal/config"
	"shipnote/internal/release"
)

// Message is the composed chat message for one status: a plain-text fallback
// for clients that cannot render structured content, plus one colored
// attachment carrying the mrkdwn body.
type Message struct {
	Fallback string
	Color    string
	Body     string
}

// Options converts the message into Slack API message options. Link and media
// previews are suppressed on every post and update.
func (m Message) Options() []slack.MsgOption {
	attachment := slack.Attachment{
		Color:      m.Color,
		Text:       m.Body,
		MarkdownIn: []string{"text"},
	}
	return []slack.MsgOption{
		slack.MsgOptionText(m.Fallback, false),
		slack.MsgOptionAttachments(attachment),
		slack.MsgOptionDisableLinkUnfurl(),
		slack.MsgOptionDisableMediaUnfurl(),
	}
}

// BuildMessage renders the chat message for the given status from the release
// context and configuration.
func BuildMessage(status Status, rc *release.Context, cfg *config.Config) Message {
	tpl := templateFor(status)

	lines := make([]string, 0, 5)
	lines = append(lines, headline(tpl, rc))
	if rc.Branch != "" {
		lines = append(lines, fmt.Sprintf("Branch: `%s`", rc.Branch))
	}
	if url, label, ok := rc.ChangeLink(); ok {
		lines = append(lines, fmt.Sprintf("<%s|%s>", url, label))
	}
	if url, ok := rc.WorkflowLink(); ok {
		lines = append(lines, fmt.Sprintf("<%s|View workflow run>", url))
	}
	if status == StatusSuccess {
		if line, ok := linksLine(rc, cfg); ok {
			lines = append(lines, line)
		}
	}

	return Message{
		Fallback: fallbackText(tpl, rc),
		Color:    tpl.color,
		Body:     strings.Join(lines, "\n"),
	}
}

func headline(tpl template, rc *release.Context) string {
	name := fmt.Sprintf("*%s*", rc.Package)
	if version := rc.DisplayVersion(); version != "" {
		name += " " + version
	}
	return fmt.Sprintf("%s %s - %s", tpl.glyph, name, tpl.label)
}

func fallbackText(tpl template, rc *release.Context) string {
	name := rc.Package
	if version := rc.DisplayVersion(); version != "" {
		name += " " + version
	}
	return fmt.Sprintf("%s - %s", name, tpl.label)
}

func linksLine(rc *release.Context, cfg *config.Config) (string, bool) {
	artifacts := SuccessArtifacts(rc, cfg)
	if len(artifacts) == 0 {
		return "", false
	}
	rendered := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		rendered = append(rendered, fmt.Sprintf("<%s|%s>", artifact.URL, artifact.Name))
	}
	return "Links: " + strings.Join(rendered, " | "), true
}

// SuccessArtifacts returns the artifact links a success message reports:
// supplied artifacts in reverse production order with unnamed or URL-less
// entries dropped, then one synthesized link per explicitly configured
// category the pipeline did not cover.
func SuccessArtifacts(rc *release.Context, cfg *config.Config) []release.Artifact {
	artifacts := make([]release.Artifact, 0, len(rc.Artifacts))
	for i := len(rc.Artifacts) - 1; i >= 0; i-- {
		artifact := rc.Artifacts[i]
		artifact.Name = strings.TrimSpace(artifact.Name)
		artifact.URL = strings.TrimSpace(artifact.URL)
		if artifact.Name == "" || artifact.URL == "" {
			continue
		}
		artifacts = append(artifacts, artifact)
	}
	if cfg == nil || len(cfg.Artifacts.Categories) == 0 {
		return artifacts
	}
	for _, category := range cfg.Artifacts.Categories {
		if hasArtifact(artifacts, category) {
			continue
		}
		if artifact, ok := synthesizeArtifact(category, rc, cfg); ok {
			artifacts = append(artifacts, artifact)
		}
	}
	return artifacts
}

// ReportedCategories resolves the publish categories being reported. With no
// explicit configuration the registry category is assumed, and an
// object-storage category is added when a CDN base URL or a supplied cdn
// artifact indicates a secondary publish step.
func ReportedCategories(rc *release.Context, cfg *config.Config) []string {
	if cfg != nil && len(cfg.Artifacts.Categories) > 0 {
		return cfg.Artifacts.Categories
	}
	categories := []string{config.CategoryNPM}
	if detectCDN(rc, cfg) {
		categories = append(categories, config.CategoryCDN)
	}
	return categories
}

func detectCDN(rc *release.Context, cfg *config.Config) bool {
	if cfg != nil && cfg.Artifacts.CDNBaseURL != "" {
		return true
	}
	if rc == nil {
		return false
	}
	if rc.EnvValue("CDN_BASE_URL", "CDN_DISTRIBUTION_ID") != "" {
		return true
	}
	for _, artifact := range rc.Artifacts {
		if strings.EqualFold(strings.TrimSpace(artifact.Name), config.CategoryCDN) {
			return true
		}
	}
	return false
}

func hasArtifact(artifacts []release.Artifact, name string) bool {
	for _, artifact := range artifacts {
		if strings.EqualFold(artifact.Name, name) {
			return true
		}
	}
	return false
}

func synthesizeArtifact(category string, rc *release.Context, cfg *config.Config) (release.Artifact, bool) {
	if rc.Package == "" || rc.Version == "" {
		return release.Artifact{}, false
	}
	switch category {
	case config.CategoryNPM:
		return release.Artifact{
			Name: config.CategoryNPM,
			URL:  fmt.Sprintf("https://www.npmjs.com/package/%s/v/%s", rc.Package, rc.Version),
		}, true
	case config.CategoryCDN:
		if cfg.Artifacts.CDNBaseURL == "" {
			return release.Artifact{}, false
		}
		return release.Artifact{
			Name: config.CategoryCDN,
			URL:  fmt.Sprintf("%s/%s@%s", cfg.Artifacts.CDNBaseURL, rc.Package, rc.Version),
		}, true
	}
	return release.Artifact{}, false
}
