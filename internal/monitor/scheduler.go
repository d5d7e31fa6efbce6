// Package monitor implements the outer sleep/reload cycle around the agent
// dispatcher. One cycle runs to completion before the next begins; the
// configuration file is reloaded before every cycle so operator edits take
// effect without a restart.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/newswatch/newswatch/internal/config"
)

// CycleFunc runs one monitoring cycle against a configuration snapshot.
// It must never panic or return: internal failures are its own to log.
type CycleFunc func(ctx context.Context, cfg *config.Config)

// Options controls the scheduler.
type Options struct {
	ConfigPath string
	// Once runs a single cycle then exits.
	Once bool
	// IntervalOverride (minutes) takes precedence over the config file's
	// intervalMinutes and scheduleCron when > 0.
	IntervalOverride int
}

// Scheduler alternates between running one cycle and sleeping until the
// next. The config snapshot handed to each cycle is immutable for that
// cycle's duration.
type Scheduler struct {
	opts     Options
	runCycle CycleFunc
}

// New creates a Scheduler that invokes runCycle once per cycle.
func New(opts Options, runCycle CycleFunc) *Scheduler {
	return &Scheduler{opts: opts, runCycle: runCycle}
}

// Run loops until ctx is cancelled (or after one cycle in Once mode). The
// only startup failure that propagates is an unreadable config file; after
// that, cycle failures and reload failures are logged and the loop
// continues.
func (s *Scheduler) Run(ctx context.Context) error {
	cfg, err := config.Load(s.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.Info("monitor started",
		"profiles", len(cfg.Profiles),
		"interval", s.NextDelay(cfg),
		"once", s.opts.Once)

	for {
		s.runCycle(ctx, cfg)

		if s.opts.Once {
			return nil
		}

		wait := s.NextDelay(cfg)
		slog.Info("sleeping until next cycle", "wait", wait)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}

		// Reload so profile/provider/interval edits take effect.
		next, err := config.Load(s.opts.ConfigPath)
		if err != nil {
			slog.Error("config reload failed, keeping previous config", "err", err)
		} else {
			cfg = next
		}
	}
}

// NextDelay computes the wait before the next cycle. Precedence: the CLI
// interval override, then a configured cron expression, then
// intervalMinutes (default 15).
func (s *Scheduler) NextDelay(cfg *config.Config) time.Duration {
	if s.opts.IntervalOverride > 0 {
		return time.Duration(s.opts.IntervalOverride) * time.Minute
	}

	if cfg.ScheduleCron != "" {
		sched, err := cron.ParseStandard(cfg.ScheduleCron)
		if err != nil {
			slog.Warn("invalid scheduleCron, falling back to intervalMinutes",
				"expr", cfg.ScheduleCron, "err", err)
		} else {
			now := time.Now()
			return sched.Next(now).Sub(now)
		}
	}

	minutes := cfg.IntervalMinutes
	if minutes <= 0 {
		minutes = 15
	}
	return time.Duration(minutes) * time.Minute
}
