package monitor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/newswatch/newswatch/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNextDelay_OverrideWins(t *testing.T) {
	s := New(Options{IntervalOverride: 5}, nil)
	cfg := config.DefaultConfig()
	cfg.IntervalMinutes = 60
	cfg.ScheduleCron = "0 * * * *"

	if got := s.NextDelay(&cfg); got != 5*time.Minute {
		t.Errorf("expected 5m from the override, got %v", got)
	}
}

func TestNextDelay_CronBeatsInterval(t *testing.T) {
	s := New(Options{}, nil)
	cfg := config.DefaultConfig()
	cfg.IntervalMinutes = 60
	cfg.ScheduleCron = "* * * * *" // every minute

	got := s.NextDelay(&cfg)
	if got <= 0 || got > time.Minute {
		t.Errorf("expected a sub-minute delay from the cron schedule, got %v", got)
	}
}

func TestNextDelay_InvalidCronFallsBackToInterval(t *testing.T) {
	s := New(Options{}, nil)
	cfg := config.DefaultConfig()
	cfg.IntervalMinutes = 30
	cfg.ScheduleCron = "not a cron expression"

	if got := s.NextDelay(&cfg); got != 30*time.Minute {
		t.Errorf("expected intervalMinutes fallback, got %v", got)
	}
}

func TestNextDelay_DefaultInterval(t *testing.T) {
	s := New(Options{}, nil)
	cfg := config.DefaultConfig()
	cfg.IntervalMinutes = 0

	if got := s.NextDelay(&cfg); got != 15*time.Minute {
		t.Errorf("expected the 15m default, got %v", got)
	}
}

func TestRun_OnceRunsSingleCycle(t *testing.T) {
	path := writeConfig(t, `{"intervalMinutes": 1}`)

	var cycles int
	s := New(Options{ConfigPath: path, Once: true}, func(ctx context.Context, cfg *config.Config) {
		cycles++
		if cfg.IntervalMinutes != 1 {
			t.Errorf("expected the loaded config, got intervalMinutes=%d", cfg.IntervalMinutes)
		}
	})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cycles != 1 {
		t.Errorf("expected exactly one cycle in once mode, got %d", cycles)
	}
}

func TestRun_CancelStopsLoop(t *testing.T) {
	path := writeConfig(t, `{"intervalMinutes": 60}`)

	ctx, cancel := context.WithCancel(context.Background())
	s := New(Options{ConfigPath: path}, func(context.Context, *config.Config) {
		cancel()
	})

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}

func TestRun_MissingConfigUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	var got *config.Config
	s := New(Options{ConfigPath: path, Once: true}, func(_ context.Context, cfg *config.Config) {
		got = cfg
	})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.IntervalMinutes != 15 {
		t.Errorf("expected default config for a missing file, got %+v", got)
	}
}
