package service

import (
	"context"
	"log/slog"
	"time"

	"Association_Portal/internal/pkg"
)

const publishTimeout = 3 * time.Second

// publish emits ev on a best effort basis. A failure is logged and never
// fails the request that caused it.
func publish(ctx context.Context, p pkg.Publisher, log *slog.Logger, ev pkg.DomainEvent) {
	if p == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := p.Publish(ctx, ev); err != nil && log != nil {
		log.WarnContext(ctx, "publish domain event", "type", ev.Type, "resource_id", ev.ResourceID, "err", err)
	}
}
