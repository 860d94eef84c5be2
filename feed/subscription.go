package feed

import (
	"context"
	"time"

	"github.com/jpillora/backoff"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/drawer"
	"github.com/raykavin/kchart/logger"
)

// CandleFeeder produces the next candle of a stream. Implementations may
// block until data is available or return an error on transient failures.
type CandleFeeder interface {
	Next(ctx context.Context) (core.Candle, error)
}

// Subscription polls a feeder and pushes candles into a data source.
// Feeder errors back off exponentially instead of hot-looping.
type Subscription struct {
	log    logger.Logger
	feeder CandleFeeder
	target *drawer.CandleSource

	interval time.Duration
	onCandle func(core.Candle)
	retry    *backoff.Backoff
}

// SubscriptionOption configures a Subscription
type SubscriptionOption func(*Subscription)

// WithInterval sets the polling interval (default 1s)
func WithInterval(d time.Duration) SubscriptionOption {
	return func(s *Subscription) { s.interval = d }
}

// WithOnCandle registers a callback invoked after each candle lands in the
// target source, typically to extend the chart range and request a repaint
func WithOnCandle(fn func(core.Candle)) SubscriptionOption {
	return func(s *Subscription) { s.onCandle = fn }
}

// NewSubscription creates a subscription feeding target from feeder
func NewSubscription(log logger.Logger, feeder CandleFeeder, target *drawer.CandleSource,
	options ...SubscriptionOption) *Subscription {

	s := &Subscription{
		log:      log,
		feeder:   feeder,
		target:   target,
		interval: time.Second,
		retry: &backoff.Backoff{
			Min:    100 * time.Millisecond,
			Max:    30 * time.Second,
			Factor: 2,
			Jitter: true,
		},
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Run polls until the context is canceled
func (s *Subscription) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			candle, err := s.feeder.Next(ctx)
			if err != nil {
				wait := s.retry.Duration()
				s.log.WithError(err).Warnf("candle feeder failed, retrying in %s", wait)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(wait):
				}
				continue
			}
			s.retry.Reset()

			s.target.Update(candle)
			if s.onCandle != nil {
				s.onCandle(candle)
			}
		}
	}
}
