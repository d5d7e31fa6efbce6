package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newswatch/newswatch/internal/config"
	"github.com/newswatch/newswatch/internal/notify"
)

var (
	notifySubject string
	notifyBody    string
)

var notifyCmd = &cobra.Command{
	Use:   "notify --subject <s> --body <text>",
	Short: "Send a digest to the configured chat targets",
	Long: "Delivers a plain-text digest to every enabled chat target\n" +
		"(Slack, Telegram) from the configuration file.",
	RunE: runNotify,
}

func init() {
	notifyCmd.Flags().StringVar(&notifySubject, "subject", "", "Digest subject (required)")
	notifyCmd.Flags().StringVar(&notifyBody, "body", "", "Digest body (required)")
	_ = notifyCmd.MarkFlagRequired("subject")
	_ = notifyCmd.MarkFlagRequired("body")
}

func runNotify(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var notifiers []notify.Notifier
	if cfg.Slack.Enabled {
		notifiers = append(notifiers,
			notify.NewSlackNotifier(cfg.Slack.BotToken, cfg.Slack.Channel))
	}
	if cfg.Telegram.Enabled {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			return err
		}
		notifiers = append(notifiers, tg)
	}

	if len(notifiers) == 0 {
		return fmt.Errorf("no notification targets enabled in config")
	}

	return notify.Fanout(cmd.Context(), notifiers, notifySubject, notifyBody)
}
