package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raykavin/kchart/core"
)

func testCandle(hour int, close float64, complete bool) core.Candle {
	return core.Candle{
		Time:     time.Date(2024, 3, 1, hour, 0, 0, 0, time.UTC),
		Open:     close - 1,
		Close:    close,
		Low:      close - 2,
		High:     close + 2,
		Volume:   100,
		Complete: complete,
	}
}

func TestBuntStorage_SaveAndLoad(t *testing.T) {
	store, err := NewBunt(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveCandle(ctx, "BTCUSDT", testCandle(2, 101, true)))
	require.NoError(t, store.SaveCandle(ctx, "BTCUSDT", testCandle(1, 100, true)))
	require.NoError(t, store.SaveCandle(ctx, "ETHUSDT", testCandle(1, 50, true)))

	candles, err := store.Candles(ctx, "BTCUSDT")
	require.NoError(t, err)
	require.Len(t, candles, 2)

	// key encoding keeps candles in time order regardless of insert order
	require.Equal(t, 100.0, candles[0].Close)
	require.Equal(t, 101.0, candles[1].Close)
}

func TestBuntStorage_SaveReplacesSameTimestamp(t *testing.T) {
	store, err := NewBunt(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveCandle(ctx, "BTCUSDT", testCandle(1, 100, false)))
	require.NoError(t, store.SaveCandle(ctx, "BTCUSDT", testCandle(1, 102, true)))

	candles, err := store.Candles(ctx, "BTCUSDT")
	require.NoError(t, err)
	require.Len(t, candles, 1)
	require.Equal(t, 102.0, candles[0].Close)
}

func TestBuntStorage_Filters(t *testing.T) {
	store, err := NewBunt(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveCandle(ctx, "BTCUSDT", testCandle(1, 100, true)))
	require.NoError(t, store.SaveCandle(ctx, "BTCUSDT", testCandle(2, 101, false)))
	require.NoError(t, store.SaveCandle(ctx, "BTCUSDT", testCandle(3, 102, true)))

	candles, err := store.Candles(ctx, "BTCUSDT", WithCompleteOnly())
	require.NoError(t, err)
	require.Len(t, candles, 2)

	from := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC)
	candles, err = store.Candles(ctx, "BTCUSDT", WithTimeRange(from, to))
	require.NoError(t, err)
	require.Len(t, candles, 1)
	require.Equal(t, 101.0, candles[0].Close)
}

func TestBuntStorage_UnknownSymbol(t *testing.T) {
	store, err := NewBunt(":memory:")
	require.NoError(t, err)
	defer store.Close()

	candles, err := store.Candles(context.Background(), "NOPE")
	require.NoError(t, err)
	require.Empty(t, candles)
}
