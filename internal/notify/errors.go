package notify

import "errors"

// Sentinel errors classifying why a lifecycle operation gave up. They are
// logged, never returned to the release pipeline.
var (
	// ErrConfigurationMissing marks a run without the required token or
	// channel. Expected in pipelines that opt out of notifications.
	ErrConfigurationMissing = errors.New("notification configuration missing")
	// ErrSessionNotReady marks a success or fail invocation without a
	// previously posted message to update.
	ErrSessionNotReady = errors.New("notification session not ready")
	// ErrTransport marks a failed chat-service call.
	ErrTransport = errors.New("chat transport failure")
)
