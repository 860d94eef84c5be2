package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/raykavin/kchart/core"
)

// candleRow is the GORM model for stored candles
type candleRow struct {
	ID       uint      `gorm:"primaryKey,autoIncrement"`
	Symbol   string    `gorm:"index:idx_symbol_time,unique"`
	Time     time.Time `gorm:"index:idx_symbol_time,unique"`
	Open     float64
	Close    float64
	Low      float64
	High     float64
	Volume   float64
	Complete bool
}

func (candleRow) TableName() string {
	return "candles"
}

func (r candleRow) toCandle() core.Candle {
	return core.Candle{
		Time:     r.Time,
		Open:     r.Open,
		Close:    r.Close,
		Low:      r.Low,
		High:     r.High,
		Volume:   r.Volume,
		Complete: r.Complete,
	}
}

// SQLStorage implements CandleStorage using GORM over SQLite
type SQLStorage struct {
	db *gorm.DB
}

// NewSQL creates a SQLite-backed candle storage at the given path
func NewSQL(sourceFile string) (*SQLStorage, error) {
	db, err := gorm.Open(sqlite.Open(sourceFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.AutoMigrate(&candleRow{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLStorage{db: db}, nil
}

// SaveCandle upserts a candle keyed by symbol and timestamp
func (s *SQLStorage) SaveCandle(ctx context.Context, symbol string, candle core.Candle) error {
	tx := s.db.WithContext(ctx)

	row := candleRow{
		Symbol:   symbol,
		Time:     candle.Time,
		Open:     candle.Open,
		Close:    candle.Close,
		Low:      candle.Low,
		High:     candle.High,
		Volume:   candle.Volume,
		Complete: candle.Complete,
	}

	var existing candleRow
	result := tx.Where("symbol = ? AND time = ?", symbol, candle.Time).First(&existing)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to query candle: %w", result.Error)
		}
		if result := tx.Create(&row); result.Error != nil {
			return fmt.Errorf("failed to create candle: %w", result.Error)
		}
		return nil
	}

	row.ID = existing.ID
	if result := tx.Save(&row); result.Error != nil {
		return fmt.Errorf("failed to update candle: %w", result.Error)
	}
	return nil
}

// Candles retrieves candles for a symbol ordered by time
func (s *SQLStorage) Candles(ctx context.Context, symbol string, filters ...CandleFilter) ([]core.Candle, error) {
	tx := s.db.WithContext(ctx)

	var rows []candleRow
	result := tx.Where("symbol = ?", symbol).Order("time").Find(&rows)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch candles: %w", result.Error)
	}

	candles := lo.Map(rows, func(row candleRow, _ int) core.Candle {
		return row.toCandle()
	})

	if len(filters) > 0 {
		candles = lo.Filter(candles, func(candle core.Candle, _ int) bool {
			for _, filter := range filters {
				if !filter(candle) {
					return false
				}
			}
			return true
		})
	}

	return candles, nil
}

// Close releases the underlying connection pool
func (s *SQLStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
