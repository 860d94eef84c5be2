package core

import (
	"fmt"
	"time"
)

// Candle is a single OHLCV record in a candle data source
type Candle struct {
	Time     time.Time
	Open     float64
	Close    float64
	Low      float64
	High     float64
	Volume   float64
	Complete bool
}

// Empty reports whether the candle carries no data
func (c Candle) Empty() bool {
	return c.Time.IsZero() && c.Open == 0 && c.Close == 0 && c.High == 0 && c.Low == 0
}

func (c Candle) String() string {
	return fmt.Sprintf("[%s] O:%f C:%f L:%f H:%f V:%f",
		c.Time.Format(time.RFC3339), c.Open, c.Close, c.Low, c.High, c.Volume)
}
