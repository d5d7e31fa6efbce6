package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/newswatch/newswatch/internal/dependency"
	"github.com/newswatch/newswatch/internal/monitor"
)

var (
	monitorOnce     bool
	monitorInterval int
	monitorConfig   string
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run the monitoring loop",
	RunE:  runMonitor,
}

func init() {
	monitorCmd.Flags().BoolVar(&monitorOnce, "once", false, "Run a single cycle then exit")
	monitorCmd.Flags().IntVar(&monitorInterval, "interval", 0,
		"Override intervalMinutes from the config file (minutes)")
	monitorCmd.Flags().StringVar(&monitorConfig, "config", "",
		"Config file path (default ~/.newswatch/config.json)")
}

func runMonitor(cmd *cobra.Command, _ []string) error {
	opts := monitor.Options{
		ConfigPath:       monitorConfig,
		Once:             monitorOnce,
		IntervalOverride: monitorInterval,
	}

	container, err := dependency.New(opts)
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := container.Scheduler().Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
