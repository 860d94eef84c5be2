package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/buntdb"

	"github.com/raykavin/kchart/core"
)

// BuntStorage implements CandleStorage using BuntDB, an embedded
// key/value database. Pass ":memory:" as the path for an in-memory store.
type BuntStorage struct {
	db *buntdb.DB
}

// NewBunt creates a new BuntDB-backed candle storage
func NewBunt(sourceFile string) (*BuntStorage, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	return &BuntStorage{db: db}, nil
}

// key builds the storage key for a symbol/timestamp pair. Unix timestamps
// are zero-padded so lexicographic key order matches time order.
func key(symbol string, unix int64) string {
	return symbol + ":" + fmt.Sprintf("%019d", unix)
}

// SaveCandle stores a candle, replacing any existing candle at the same
// symbol and timestamp
func (b *BuntStorage) SaveCandle(_ context.Context, symbol string, candle core.Candle) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		content, err := json.Marshal(candle)
		if err != nil {
			return fmt.Errorf("failed to marshal candle: %w", err)
		}

		_, _, err = tx.Set(key(symbol, candle.Time.Unix()), string(content), nil)
		if err != nil {
			return fmt.Errorf("failed to store candle: %w", err)
		}

		return nil
	})
}

// Candles retrieves candles for a symbol ordered by time
func (b *BuntStorage) Candles(_ context.Context, symbol string, filters ...CandleFilter) ([]core.Candle, error) {
	candles := make([]core.Candle, 0)
	prefix := symbol + ":"

	err := b.db.View(func(tx *buntdb.Tx) error {
		err := tx.AscendKeys(prefix+"*", func(k, value string) bool {
			var candle core.Candle
			if err := json.Unmarshal([]byte(value), &candle); err != nil {
				return true // skip malformed entries
			}

			for _, filter := range filters {
				if !filter(candle) {
					return true
				}
			}

			candles = append(candles, candle)
			return true
		})
		if err != nil {
			return fmt.Errorf("failed to iterate over candles: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return candles, nil
}

// Close releases the database
func (b *BuntStorage) Close() error {
	return b.db.Close()
}
