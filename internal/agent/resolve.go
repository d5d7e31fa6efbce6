package agent

import (
	"log/slog"

	"github.com/newswatch/newswatch/internal/config"
)

// defaultProvider is used when no providers are configured at all.
var defaultProvider = config.ProviderSpec{
	ID:    "default",
	Kind:  config.KindClaude,
	Model: "claude-haiku-4-5-20251001",
}

// ResolveProvider looks up the active provider by id. A missing id falls
// back to the first configured entry with a warning; an empty list falls
// back to the hardcoded default. Exactly one provider is active per cycle.
func ResolveProvider(cfg *config.Config) config.ProviderSpec {
	for _, p := range cfg.Providers {
		if p.ID == cfg.ActiveProvider {
			return p
		}
	}

	if len(cfg.Providers) > 0 {
		slog.Warn("activeProvider not found, using first provider",
			"wanted", cfg.ActiveProvider, "using", cfg.Providers[0].ID)
		return cfg.Providers[0]
	}

	return defaultProvider
}
