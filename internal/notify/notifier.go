package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shipnote/internal/config"
	"shipnote/internal/logging"
	"shipnote/internal/release"
)

// ChatAPI is the chat-service surface the notifier depends on. The production
// implementation wraps the Slack Web API; tests substitute a recorder.
type ChatAPI interface {
	// PostMessage creates a new message and returns the channel and the
	// opaque message handle required for later updates.
	PostMessage(ctx context.Context, channelID string, msg Message) (channel string, timestamp string, err error)
	// UpdateMessage rewrites an existing message in place.
	UpdateMessage(ctx context.Context, channelID, timestamp string, msg Message) error
}

// ClientFactory builds an authenticated chat client from a token.
type ClientFactory func(token string) ChatAPI

// Session identifies the single message a release run keeps updated.
type Session struct {
	ChannelID string `json:"channel"`
	MessageTS string `json:"ts"`
}

type runState int

const (
	stateIdle runState = iota
	statePending
	stateResolved
)

// Notifier keeps one Slack status message updated across a release run. All
// three lifecycle operations are fire-and-forget: failures are logged with
// enough context to diagnose and never reach the release pipeline.
//
// The orchestrator calls Prepare once, then exactly one of Success or Fail.
// Invocation is strictly sequential; a Notifier covers a single run and is
// not safe for concurrent use.
type Notifier struct {
	cfg     *config.Config
	logger  *slog.Logger
	factory ClientFactory
	session Session
	state   runState
}

// Option customizes notifier construction.
type Option func(*Notifier)

// WithClientFactory replaces the Slack-backed client factory. Tests use this
// to observe outbound calls.
func WithClientFactory(factory ClientFactory) Option {
	return func(n *Notifier) {
		if factory != nil {
			n.factory = factory
		}
	}
}

// New constructs a notifier for one release run.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Notifier {
	notifier := &Notifier{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "notify"),
	}
	notifier.factory = notifier.slackFactory
	for _, opt := range opts {
		opt(notifier)
	}
	return notifier
}

// Resume primes the session from a handle produced by an earlier Prepare,
// letting a separate process run the success or fail hook. The orchestrator
// carries the handle; nothing is persisted here.
func (n *Notifier) Resume(session Session) {
	if session.ChannelID == "" || session.MessageTS == "" {
		return
	}
	n.session = session
	n.state = statePending
}

// Session returns the stored message handle and whether one exists.
func (n *Notifier) Session() (Session, bool) {
	return n.session, n.session.MessageTS != ""
}

// Prepare posts the pending status message and stores its handle. Missing
// token or channel configuration and transport failures are logged and
// swallowed; the release pipeline never sees them.
func (n *Notifier) Prepare(ctx context.Context, rc *release.Context) {
	if err := n.prepare(ctx, rc); err != nil {
		n.logOperationError("prepare", rc, err)
	}
}

// Success updates the message posted by Prepare to the success state,
// including the release-artifact links.
func (n *Notifier) Success(ctx context.Context, rc *release.Context) {
	if err := n.resolve(ctx, StatusSuccess, rc); err != nil {
		n.logOperationError("success", rc, err)
	}
}

// Fail updates the message posted by Prepare to the failure state.
func (n *Notifier) Fail(ctx context.Context, rc *release.Context) {
	if err := n.resolve(ctx, StatusFailure, rc); err != nil {
		n.logOperationError("fail", rc, err)
	}
}

func (n *Notifier) prepare(ctx context.Context, rc *release.Context) error {
	if n.state != stateIdle {
		return fmt.Errorf("%w: prepare already ran for this session", ErrSessionNotReady)
	}
	token := rc.Token()
	if token == "" {
		return fmt.Errorf("%w: no Slack token in environment", ErrConfigurationMissing)
	}
	channel := n.channelFor(rc)
	if channel == "" {
		return fmt.Errorf("%w: no destination channel configured", ErrConfigurationMissing)
	}

	msg := BuildMessage(StatusPending, rc, n.cfg)
	postedChannel, timestamp, err := n.factory(token).PostMessage(ctx, channel, msg)
	if err != nil {
		return fmt.Errorf("%w: post message to %s: %w", ErrTransport, channel, err)
	}

	n.session = Session{ChannelID: postedChannel, MessageTS: timestamp}
	n.state = statePending
	n.logger.Info("posted release notification",
		logging.Args(
			logging.String(logging.FieldOperation, "prepare"),
			logging.String(logging.FieldChannel, postedChannel),
			logging.String(logging.FieldPackage, rc.Package),
			logging.String("ts", timestamp),
		)...)
	return nil
}

func (n *Notifier) resolve(ctx context.Context, status Status, rc *release.Context) error {
	operation := status.String()
	if n.state != statePending || n.session.MessageTS == "" {
		return fmt.Errorf("%w: %s called without a posted message", ErrSessionNotReady, operation)
	}
	token := rc.Token()
	if token == "" {
		return fmt.Errorf("%w: no Slack token in environment", ErrConfigurationMissing)
	}

	msg := BuildMessage(status, rc, n.cfg)
	if err := n.factory(token).UpdateMessage(ctx, n.session.ChannelID, n.session.MessageTS, msg); err != nil {
		return fmt.Errorf("%w: update message in %s: %w", ErrTransport, n.session.ChannelID, err)
	}

	n.state = stateResolved
	n.logger.Info("updated release notification",
		logging.Args(
			logging.String(logging.FieldOperation, operation),
			logging.String(logging.FieldChannel, n.session.ChannelID),
			logging.String(logging.FieldPackage, rc.Package),
			logging.String("ts", n.session.MessageTS),
		)...)
	return nil
}

func (n *Notifier) channelFor(rc *release.Context) string {
	if n.cfg != nil && n.cfg.Slack.Channel != "" {
		return n.cfg.Slack.Channel
	}
	return rc.Channel()
}

func (n *Notifier) logOperationError(operation string, rc *release.Context, err error) {
	attrs := logging.Args(
		logging.String(logging.FieldOperation, operation),
		logging.String(logging.FieldPackage, rc.Package),
		logging.Error(err),
	)
	switch {
	case errors.Is(err, ErrConfigurationMissing):
		n.logger.Info("skipping release notification", attrs...)
	case errors.Is(err, ErrSessionNotReady):
		n.logger.Warn("release notification out of order", attrs...)
	default:
		n.logger.Error("release notification failed", attrs...)
	}
}
