package chat

import (
	"context"
	"log/slog"
)

// FallbackPublisher drops every message. It is used when the broker is
// unreachable at startup so that notifications keep flowing on the other
// channels.
type FallbackPublisher struct {
	log *slog.Logger
}

func NewFallback(logger *slog.Logger) Publisher {
	return &FallbackPublisher{log: logger}
}

func (p *FallbackPublisher) Publish(ctx context.Context, key string, msg Envelope) error {
	p.log.WarnContext(ctx, "FallbackPublisher: skipped publish", slog.String("key", key), slog.String("type", msg.Meta.Type))
	return nil
}

func (p *FallbackPublisher) Close() error {
	return nil
}
