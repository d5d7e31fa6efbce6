// Package notify delivers digests to optional chat targets (Slack,
// Telegram) alongside the primary email path. Targets are independent:
// one failing delivery never blocks the others.
package notify

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Notifier is one outbound notification target.
type Notifier interface {
	Name() string
	Send(ctx context.Context, subject, body string) error
}

// Fanout sends the digest to every notifier concurrently. Per-target
// failures are logged, not returned; Fanout itself only fails on context
// cancellation.
func Fanout(ctx context.Context, notifiers []Notifier, subject, body string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, n := range notifiers {
		n := n
		g.Go(func() error {
			if err := n.Send(gctx, subject, body); err != nil {
				slog.Warn("notification failed", "target", n.Name(), "err", err)
			}
			return nil
		})
	}
	return g.Wait()
}
