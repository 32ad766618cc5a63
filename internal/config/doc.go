// Package config loads, normalizes, and validates shipnote's TOML
// configuration. A missing file is fine; every setting has a default, and
// the only secrets (Slack token, channel) come from the environment rather
// than the file.
package config
