// Package notify keeps one Slack status message updated across a release
// run. Prepare posts the pending message and stores its handle; Success and
// Fail rewrite that message in place with the terminal state.
//
// Every operation is best-effort. Missing configuration, out-of-order hook
// calls, and transport failures are logged and swallowed so a notification
// problem can never fail a release. The worst outcome is an absent or stale
// chat message, diagnosable from the logs.
package notify
