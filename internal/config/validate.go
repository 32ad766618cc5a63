package config

import (
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSlack(); err != nil {
		return err
	}
	if err := c.validateArtifacts(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSlack() error {
	if c.Slack.APIURL != "" {
		if _, err := url.Parse(c.Slack.APIURL); err != nil {
			return fmt.Errorf("slack.api_url is not a valid URL: %w", err)
		}
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	for _, category := range c.Artifacts.Categories {
		switch category {
		case CategoryNPM, CategoryCDN:
		default:
			return fmt.Errorf("artifacts.categories: unknown category %q (expected %q or %q)", category, CategoryNPM, CategoryCDN)
		}
	}
	if c.Artifacts.CDNBaseURL != "" {
		parsed, err := url.Parse(c.Artifacts.CDNBaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("artifacts.cdn_base_url must be an absolute URL, got %q", c.Artifacts.CDNBaseURL)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
