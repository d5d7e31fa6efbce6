package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newswatch/newswatch/internal/config"
	"github.com/newswatch/newswatch/internal/mailer"
)

var (
	emailTo      string
	emailSubject string
	emailHTML    string
)

var emailCmd = &cobra.Command{
	Use:   "email --to <addr> --subject <s> --html <body>",
	Short: "Send an HTML notification email",
	RunE:  runEmail,
}

func init() {
	emailCmd.Flags().StringVar(&emailTo, "to", "",
		"Recipient (falls back to the configured recipient env var)")
	emailCmd.Flags().StringVar(&emailSubject, "subject", "", "Email subject (required)")
	emailCmd.Flags().StringVar(&emailHTML, "html", "", "HTML body content (required)")
	_ = emailCmd.MarkFlagRequired("subject")
	_ = emailCmd.MarkFlagRequired("html")
}

func runEmail(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	from := os.Getenv(cfg.Email.FromEnv)
	if from == "" {
		return fmt.Errorf("%s not set", cfg.Email.FromEnv)
	}

	to := os.Getenv(cfg.Email.ToEnv)
	if to == "" {
		to = emailTo
	}
	if to == "" {
		return fmt.Errorf("%s not set and --to not provided", cfg.Email.ToEnv)
	}

	m := mailer.New(apiKey, from)
	if err := m.Send(cmd.Context(), to, emailSubject, emailHTML); err != nil {
		return err
	}

	fmt.Printf("Email sent to %s\n", to)
	return nil
}
