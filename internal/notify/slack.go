package notify

import (
	"context"
	"fmt"

	slackgo "github.com/slack-go/slack"
)

// SlackNotifier posts digests to one Slack channel via the Web API.
type SlackNotifier struct {
	client  *slackgo.Client
	channel string
}

// NewSlackNotifier creates a notifier for the given bot token and channel
// (ID or #name).
func NewSlackNotifier(botToken, channel string) *SlackNotifier {
	return &SlackNotifier{
		client:  slackgo.New(botToken),
		channel: channel,
	}
}

func (s *SlackNotifier) Name() string { return "slack" }

func (s *SlackNotifier) Send(ctx context.Context, subject, body string) error {
	text := fmt.Sprintf("*%s*\n%s", subject, body)
	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slackgo.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("slack post: %w", err)
	}
	return nil
}
