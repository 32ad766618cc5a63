package config

const (
	defaultRequestTimeout = 10
	defaultLogFormat      = "auto"
	defaultLogLevel       = "info"
)

// CategoryNPM and CategoryCDN are the publish categories shipnote can report.
const (
	CategoryNPM = "npm"
	CategoryCDN = "cdn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Slack: Slack{
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
