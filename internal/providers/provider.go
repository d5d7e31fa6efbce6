// Package providers normalizes LLM backends into the monitoring loop's
// neutral cycle protocol. Two variants exist: the claude adapter wraps a
// backend that runs its own internal tool loop, and the openai adapter
// drives a chat-completions tool loop explicitly, turn by turn.
package providers

import "context"

// CycleInput carries everything an adapter needs to run one monitoring
// cycle. The prompts are rebuilt from freshly loaded configuration at the
// start of every cycle.
type CycleInput struct {
	SystemPrompt string
	UserPrompt   string
	Model        string
	MaxTurns     int
	WorkDir      string
}

// CycleOutcome is the log-only summary of a completed cycle. CostUSD is
// zero for backends without usage accounting.
type CycleOutcome struct {
	Turns   int
	CostUSD float64
}

// Adapter is implemented by each backend variant. RunCycle blocks for the
// duration of the cycle; an error means the cycle ended early (backend
// communication failure) and must be logged, not propagated as a crash.
type Adapter interface {
	Kind() string
	RunCycle(ctx context.Context, in CycleInput) (CycleOutcome, error)
}
