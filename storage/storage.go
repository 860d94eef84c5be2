// Package storage persists candle history so charts can be rehydrated
// between sessions. Two backends are provided: an embedded buntdb store
// and a SQL store backed by GORM.
package storage

import (
	"context"
	"time"

	"github.com/raykavin/kchart/core"
)

// CandleFilter filters candles in queries
type CandleFilter func(candle core.Candle) bool

// CandleStorage persists and retrieves candle history per symbol
type CandleStorage interface {
	// SaveCandle stores a candle, replacing any candle with the same
	// symbol and timestamp
	SaveCandle(ctx context.Context, symbol string, candle core.Candle) error

	// Candles retrieves candles for a symbol ordered by time, applying
	// the given filters in sequence
	Candles(ctx context.Context, symbol string, filters ...CandleFilter) ([]core.Candle, error)

	// Close releases the underlying database
	Close() error
}

// WithTimeRange filters candles to the [from, to) interval
func WithTimeRange(from, to time.Time) CandleFilter {
	return func(candle core.Candle) bool {
		return !candle.Time.Before(from) && candle.Time.Before(to)
	}
}

// WithCompleteOnly filters out partial candles
func WithCompleteOnly() CandleFilter {
	return func(candle core.Candle) bool {
		return candle.Complete
	}
}
