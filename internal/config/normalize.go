package config

import "strings"

func (c *Config) normalize() {
	c.normalizeSlack()
	c.normalizeArtifacts()
	c.normalizeLogging()
}

func (c *Config) normalizeSlack() {
	c.Slack.Channel = strings.TrimSpace(c.Slack.Channel)
	c.Slack.APIURL = strings.TrimSpace(c.Slack.APIURL)
	if c.Slack.APIURL != "" && !strings.HasSuffix(c.Slack.APIURL, "/") {
		c.Slack.APIURL += "/"
	}
	if c.Slack.RequestTimeout <= 0 {
		c.Slack.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeArtifacts() {
	categories := make([]string, 0, len(c.Artifacts.Categories))
	seen := map[string]struct{}{}
	for _, category := range c.Artifacts.Categories {
		category = strings.ToLower(strings.TrimSpace(category))
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	c.Artifacts.Categories = categories
	c.Artifacts.CDNBaseURL = strings.TrimRight(strings.TrimSpace(c.Artifacts.CDNBaseURL), "/")
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
