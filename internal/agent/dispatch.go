package agent

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/newswatch/newswatch/internal/config"
	"github.com/newswatch/newswatch/internal/providers"
)

// MaxTurnsPerCycle caps the model turns of one cycle. The loop must
// terminate once the cap is reached regardless of model state.
const MaxTurnsPerCycle = 30

// Dispatcher selects the provider adapter matching the active backend kind
// and runs one cycle through it.
type Dispatcher struct {
	adapters map[string]providers.Adapter
	workDir  string
	selfPath string
}

// NewDispatcher creates a Dispatcher over the given adapters. workDir is
// the working directory handed to adapters (and through them to shell
// commands).
func NewDispatcher(workDir string, adapters ...providers.Adapter) *Dispatcher {
	m := make(map[string]providers.Adapter, len(adapters))
	for _, a := range adapters {
		m[a.Kind()] = a
	}

	selfPath, err := os.Executable()
	if err != nil {
		selfPath = "newswatch"
	}

	return &Dispatcher{adapters: m, workDir: workDir, selfPath: selfPath}
}

// RunCycle resolves the active provider, builds the prompts, and invokes
// the matching adapter. Every failure is logged and swallowed: an
// unrecognized kind or a failed cycle skips to the next scheduled cycle,
// never terminates the scheduler.
func (d *Dispatcher) RunCycle(ctx context.Context, cfg *config.Config) {
	spec := ResolveProvider(cfg)

	adapter, ok := d.adapters[spec.Kind]
	if !ok {
		slog.Error("unknown provider kind, skipping cycle",
			"kind", spec.Kind, "provider", spec.ID)
		return
	}

	cycleID := uuid.NewString()[:8]
	slog.Info("cycle started",
		"cycle", cycleID, "provider", spec.ID, "kind", spec.Kind, "model", spec.Model)

	in := providers.CycleInput{
		SystemPrompt: BuildSystemPrompt(cfg, spec.Kind, d.selfPath),
		UserPrompt:   BuildUserPrompt(cfg),
		Model:        spec.Model,
		MaxTurns:     MaxTurnsPerCycle,
		WorkDir:      d.workDir,
	}

	outcome, err := adapter.RunCycle(ctx, in)
	if err != nil {
		slog.Error("cycle failed", "cycle", cycleID, "err", err)
		return
	}

	if outcome.CostUSD > 0 {
		slog.Info("cycle complete", "cycle", cycleID,
			"turns", outcome.Turns, "cost_usd", fmt.Sprintf("%.4f", outcome.CostUSD))
	} else {
		slog.Info("cycle complete", "cycle", cycleID, "turns", outcome.Turns)
	}
}
