// Package logging builds the slog loggers used across shipnote. Console and
// JSON handlers share one Options surface; "auto" picks console on a terminal
// and JSON everywhere else. Output goes to stderr by default because command
// stdout carries machine-readable handle JSON for the orchestrator.
package logging
