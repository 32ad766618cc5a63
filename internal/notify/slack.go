package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

// slackChat adapts the Slack Web API client to the ChatAPI surface.
type slackChat struct {
	client *slack.Client
}

// slackFactory builds the production Slack client, honoring the configured
// request timeout and API base URL override.
func (n *Notifier) slackFactory(token string) ChatAPI {
	timeout := 10 * time.Second
	options := []slack.Option{}
	if n.cfg != nil {
		if n.cfg.Slack.RequestTimeout > 0 {
			timeout = time.Duration(n.cfg.Slack.RequestTimeout) * time.Second
		}
		if n.cfg.Slack.APIURL != "" {
			options = append(options, slack.OptionAPIURL(n.cfg.Slack.APIURL))
		}
	}
	options = append(options, slack.OptionHTTPClient(&http.Client{Timeout: timeout}))
	return &slackChat{client: slack.New(token, options...)}
}

func (s *slackChat) PostMessage(ctx context.Context, channelID string, msg Message) (string, string, error) {
	channel, timestamp, err := s.client.PostMessageContext(ctx, channelID, msg.Options()...)
	if err != nil {
		return "", "", fmt.Errorf("chat.postMessage: %w", err)
	}
	return channel, timestamp, nil
}

func (s *slackChat) UpdateMessage(ctx context.Context, channelID, timestamp string, msg Message) error {
	if _, _, _, err := s.client.UpdateMessageContext(ctx, channelID, timestamp, msg.Options()...); err != nil {
		return fmt.Errorf("chat.update: %w", err)
	}
	return nil
}
