// Package feed loads and streams candle data into chart data sources:
// CSV files, polling subscriptions and a random-walk simulator.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/xhit/go-str2duration/v2"

	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/drawer"
)

var (
	// ErrInsufficientData is returned when there is not enough data to
	// fulfill a request
	ErrInsufficientData = errors.New("insufficient data")

	// defaultHeaderMap defines the standard CSV column mapping
	defaultHeaderMap = map[string]int{
		"time": 0, "open": 1, "close": 2, "low": 3, "high": 4, "volume": 5,
	}
)

// CSVFeed holds candles loaded from a CSV file, optionally resampled to a
// coarser timeframe
type CSVFeed struct {
	Candles   []core.Candle
	Timeframe string
}

// CSVOption configures the CSV loader
type CSVOption func(*csvLoader)

type csvLoader struct {
	showProgress bool
}

// WithProgress renders a progress bar while parsing large files
func WithProgress() CSVOption {
	return func(l *csvLoader) { l.showProgress = true }
}

// LoadCSV reads candles from a file and resamples them to the target
// timeframe when it differs from the source one. Columns follow the
// time,open,close,low,high,volume layout unless the file carries a header
// row naming them.
func LoadCSV(file, sourceTimeframe, targetTimeframe string, options ...CSVOption) (*CSVFeed, error) {
	loader := &csvLoader{}
	for _, option := range options {
		option(loader)
	}

	candles, err := loader.readCandles(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load csv feed %s: %w", file, err)
	}
	if len(candles) == 0 {
		return nil, ErrInsufficientData
	}

	feed := &CSVFeed{Candles: candles, Timeframe: sourceTimeframe}
	if targetTimeframe != "" && targetTimeframe != sourceTimeframe {
		if err := feed.resample(targetTimeframe); err != nil {
			return nil, err
		}
	}

	return feed, nil
}

// Fill appends all loaded candles into the given source
func (f *CSVFeed) Fill(src *drawer.CandleSource) {
	src.Append(f.Candles...)
}

func (l *csvLoader) readCandles(file string) ([]core.Candle, error) {
	csvFile, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer csvFile.Close()

	csvLines, err := csv.NewReader(csvFile).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(csvLines) == 0 {
		return nil, ErrInsufficientData
	}

	headerMap, hasCustomHeaders := parseHeaders(csvLines[0])
	if hasCustomHeaders {
		csvLines = csvLines[1:]
	}

	var bar *progressbar.ProgressBar
	if l.showProgress {
		bar = progressbar.Default(int64(len(csvLines)))
	}

	candles := make([]core.Candle, 0, len(csvLines))
	for _, line := range csvLines {
		candle, err := parseCandleFromLine(line, headerMap)
		if err != nil {
			return nil, err
		}
		candles = append(candles, candle)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return candles, nil
}

// parseHeaders analyzes CSV headers and returns an index map
func parseHeaders(headers []string) (headerMap map[string]int, hasCustomHeaders bool) {
	// a numeric first field means there is no header row
	if _, err := strconv.Atoi(headers[0]); err == nil {
		return defaultHeaderMap, false
	}

	headerMap = make(map[string]int)
	for index, header := range headers {
		headerMap[header] = index
	}
	return headerMap, true
}

// parseCandleFromLine parses a CSV line and creates a candle
func parseCandleFromLine(line []string, headerMap map[string]int) (core.Candle, error) {
	timestamp, err := strconv.Atoi(line[headerMap["time"]])
	if err != nil {
		return core.Candle{}, err
	}

	candle := core.Candle{
		Time:     time.Unix(int64(timestamp), 0).UTC(),
		Complete: true,
	}

	if candle.Open, err = strconv.ParseFloat(line[headerMap["open"]], 64); err != nil {
		return core.Candle{}, err
	}
	if candle.Close, err = strconv.ParseFloat(line[headerMap["close"]], 64); err != nil {
		return core.Candle{}, err
	}
	if candle.Low, err = strconv.ParseFloat(line[headerMap["low"]], 64); err != nil {
		return core.Candle{}, err
	}
	if candle.High, err = strconv.ParseFloat(line[headerMap["high"]], 64); err != nil {
		return core.Candle{}, err
	}
	if candle.Volume, err = strconv.ParseFloat(line[headerMap["volume"]], 64); err != nil {
		return core.Candle{}, err
	}

	return candle, nil
}

// resample merges candles into buckets of the target timeframe
func (f *CSVFeed) resample(targetTimeframe string) error {
	target, err := str2duration.ParseDuration(targetTimeframe)
	if err != nil {
		return fmt.Errorf("invalid target timeframe %q: %w", targetTimeframe, err)
	}
	source, err := str2duration.ParseDuration(f.Timeframe)
	if err != nil {
		return fmt.Errorf("invalid source timeframe %q: %w", f.Timeframe, err)
	}
	if target < source {
		return fmt.Errorf("cannot resample %s into finer timeframe %s", f.Timeframe, targetTimeframe)
	}

	resampled := make([]core.Candle, 0, len(f.Candles))
	var bucket core.Candle

	for _, candle := range f.Candles {
		bucketTime := candle.Time.Truncate(target)

		if bucket.Time.IsZero() || !bucket.Time.Equal(bucketTime) {
			if !bucket.Time.IsZero() {
				resampled = append(resampled, bucket)
			}
			bucket = candle
			bucket.Time = bucketTime
			continue
		}

		bucket.Close = candle.Close
		bucket.Volume += candle.Volume
		if candle.High > bucket.High {
			bucket.High = candle.High
		}
		if candle.Low < bucket.Low {
			bucket.Low = candle.Low
		}
	}
	if !bucket.Time.IsZero() {
		resampled = append(resampled, bucket)
	}

	f.Candles = resampled
	f.Timeframe = targetTimeframe
	return nil
}
