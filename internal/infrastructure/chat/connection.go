package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

type ConnectionOptions struct {
	URL           string
	RetryAttempts int
	Delay         time.Duration
	Logger        *slog.Logger
}

const MaxDelay = 60 * time.Second

// dial is swapped in tests.
var dial = amqp091.Dial

// DialWithRetry connects to RabbitMQ with exponential backoff and gives up
// early when ctx is cancelled.
func DialWithRetry(ctx context.Context, cfg ConnectionOptions) (*amqp091.Connection, error) {
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	var lastErr error

	for i := 1; i <= cfg.RetryAttempts; i++ {
		conn, err := dial(cfg.URL)
		if err == nil {
			if i > 1 {
				cfg.Logger.Info("rabbit connected", slog.Int("attempt", i))
			}
			return conn, nil
		}
		lastErr = err
		if i == cfg.RetryAttempts {
			break
		}

		sleep := cfg.Delay * time.Duration(math.Pow(2, float64(i-1)))
		if sleep > MaxDelay {
			sleep = MaxDelay
		}

		cfg.Logger.Warn("rabbit dial failed",
			slog.Int("attempt", i),
			slog.Duration("sleep", sleep),
			slog.Any("error", err),
		)

		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, errors.New("dial cancelled: " + ctx.Err().Error())
		case <-timer.C:
		}
	}

	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w",
		cfg.RetryAttempts, lastErr)
}

// Connect dials the broker and falls back to a publisher that drops
// messages when no broker is configured or reachable.
func Connect(ctx context.Context, cfg ConnectionOptions, exchange string) Publisher {
	if cfg.URL == "" {
		cfg.Logger.Warn("rabbit url not configured, chat delivery disabled")
		return NewFallback(cfg.Logger)
	}
	conn, err := DialWithRetry(ctx, cfg)
	if err != nil {
		cfg.Logger.Error("rabbit unavailable, chat delivery disabled", slog.Any("error", err))
		return NewFallback(cfg.Logger)
	}
	pub, err := NewPublisher(conn, exchange, cfg.Logger)
	if err != nil {
		cfg.Logger.Error("chat exchange setup failed", slog.Any("error", err))
		return NewFallback(cfg.Logger)
	}
	return pub
}
