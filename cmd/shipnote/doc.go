// Command shipnote exposes the release notification hooks to exec-style
// orchestrators. prepare posts the pending message and prints its handle as
// JSON; success and fail take that handle back and update the message in
// place. render previews a message without posting, and test-notify checks
// the Slack wiring end to end.
package main
