package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raykavin/kchart/chart"
	"github.com/raykavin/kchart/core"
	"github.com/raykavin/kchart/drawer"
	"github.com/raykavin/kchart/drawer/indicator"
	"github.com/raykavin/kchart/feed"
	"github.com/raykavin/kchart/logger"
	zerologger "github.com/raykavin/kchart/logger/zerolog"
	"github.com/raykavin/kchart/metric"
	"github.com/raykavin/kchart/painter/term"
	"github.com/raykavin/kchart/storage"
)

const dateTimeLayout = "2006-01-02 15:04:05"

// Command line flags
var (
	csvFile         string
	sourceTimeframe string
	targetTimeframe string
	candleCount     int
	width           int
	height          int
	symbol          string
	pointerX        float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "kchart",
		Short:   "Terminal chart rendering utilities",
		Version: "1.0.0",
	}

	rootCmd.AddCommand(buildRenderCmd(), buildStatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a candle chart with a linked volume pane",
		RunE:  runRender,
	}

	renderCmd.Flags().StringVarP(&csvFile, "csv", "c", "", "CSV file with time,open,close,low,high,volume candles")
	renderCmd.Flags().StringVarP(&sourceTimeframe, "timeframe", "t", "1h", "Timeframe of the CSV data (e.g. 1m, 1h)")
	renderCmd.Flags().StringVarP(&targetTimeframe, "resample", "r", "", "Resample to a coarser timeframe (e.g. 4h)")
	renderCmd.Flags().IntVarP(&candleCount, "candles", "n", 60, "Number of simulated candles when no CSV is given")
	renderCmd.Flags().IntVarP(&width, "width", "W", 0, "Grid width in characters (default from KCHART_WIDTH)")
	renderCmd.Flags().IntVarP(&height, "height", "H", 0, "Grid height in characters (default from KCHART_HEIGHT)")
	renderCmd.Flags().StringVarP(&symbol, "symbol", "s", "DEMO", "Symbol name used as the storage key")
	renderCmd.Flags().Float64VarP(&pointerX, "pointer", "p", -1, "Pointer X position in cells for the crosshair demo")

	return renderCmd
}

func buildStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print summary statistics and a return histogram",
		RunE:  runStats,
	}

	statsCmd.Flags().StringVarP(&csvFile, "csv", "c", "", "CSV file with time,open,close,low,high,volume candles")
	statsCmd.Flags().StringVarP(&sourceTimeframe, "timeframe", "t", "1h", "Timeframe of the CSV data (e.g. 1m, 1h)")
	statsCmd.Flags().IntVarP(&candleCount, "candles", "n", 200, "Number of simulated candles when no CSV is given")

	return statsCmd
}

// loadConfig binds environment defaults: grid size, storage path and log level
func loadConfig() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("KCHART")
	viper.SetDefault("WIDTH", 140)
	viper.SetDefault("HEIGHT", 40)
	viper.SetDefault("DB", "")
	viper.SetDefault("LOG_LEVEL", "info")
}

func newLogger() (logger.Logger, error) {
	return zerologger.NewConsole(viper.GetString("LOG_LEVEL"), dateTimeLayout, true, false)
}

// loadCandles fills a candle source from the CSV file or, when none is
// given, from the random-walk simulator
func loadCandles(log logger.Logger) (*drawer.CandleSource, error) {
	source := drawer.NewCandleSource()

	if csvFile != "" {
		csvFeed, err := feed.LoadCSV(csvFile, sourceTimeframe, targetTimeframe, feed.WithProgress())
		if err != nil {
			return nil, err
		}
		csvFeed.Fill(source)
		log.Infof("loaded %d candles from %s", source.Len(), csvFile)
		return source, nil
	}

	sim := feed.NewSimulator(core.Candle{}, time.Hour)
	source.Append(sim.History(candleCount)...)
	log.Infof("simulated %d candles", source.Len())
	return source, nil
}

// persistCandles round-trips the candles through storage when KCHART_DB is
// set, so repeated runs can reload the same history
func persistCandles(ctx context.Context, log logger.Logger, source *drawer.CandleSource) error {
	dbPath := viper.GetString("DB")
	if dbPath == "" {
		return nil
	}

	var store storage.CandleStorage
	var err error
	if strings.HasSuffix(dbPath, ".sqlite") || strings.HasSuffix(dbPath, ".db") {
		store, err = storage.NewSQL(dbPath)
	} else {
		store, err = storage.NewBunt(dbPath)
	}
	if err != nil {
		return fmt.Errorf("failed to open candle storage: %w", err)
	}
	defer store.Close()

	for i := 0; i < source.Len(); i++ {
		if err := store.SaveCandle(ctx, symbol, source.At(i)); err != nil {
			return err
		}
	}

	stored, err := store.Candles(ctx, symbol, storage.WithCompleteOnly())
	if err != nil {
		return err
	}
	log.Infof("persisted %d candles to %s", len(stored), dbPath)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	loadConfig()

	log, err := newLogger()
	if err != nil {
		return err
	}

	source, err := loadCandles(log)
	if err != nil {
		return err
	}
	if err := persistCandles(cmd.Context(), log, source); err != nil {
		return err
	}

	if width <= 0 {
		width = viper.GetInt("WIDTH")
	}
	if height <= 0 {
		height = viper.GetInt("HEIGHT")
	}

	composite := buildComposite(log, source)

	painter := term.New(width, height)
	composite.SetXRange(0, source.Len())
	composite.PaintAll(painter, painter.Bounds())

	// move the pointer over the price pane so the linked crosshairs show up
	// in both panes, then repaint the frame the invalidation asked for
	if pointerX >= 0 {
		price := composite.SubCharts()[0]
		composite.OnPointerMove(price.Surface(), pointerX, float64(height)/4)
		composite.SetRepaintFunc(func() {
			composite.PaintAll(painter, painter.Bounds())
		})
		composite.Tick()
	}

	fmt.Print(painter.String())
	return nil
}

// buildComposite stacks a candle pane over a volume pane with linked X
// crosshairs, the layout every exchange UI uses
func buildComposite(log logger.Logger, source *drawer.CandleSource) *chart.Composite {
	composite := chart.NewComposite(log, chart.WithPaddingScheme(chart.PaddingScheme{
		Left: 10, Top: 0, Right: 2, Bottom: 2,
	}))

	priceSurface := chart.NewSurface(log)
	priceSurface.AddDrawer(drawer.NewCandle(source))
	priceSurface.AddAxis(chart.NewValueAxis(core.Vertical))

	sma := indicator.NewSMA(7, "yellow", indicator.Close)
	sma.Load(source)
	priceSurface.AddDrawer(sma)

	bands := indicator.NewBollingerBands(20, 2.0, "cyan", "blue")
	bands.Load(source)
	for _, line := range bands.Drawers() {
		priceSurface.AddDrawer(line)
	}

	volumeSurface := chart.NewSurface(log)
	volumes := drawer.NewFloatSource()
	for i := 0; i < source.Len(); i++ {
		volumes.Append(source.At(i).Volume)
	}
	volumeSurface.AddDrawer(drawer.NewBar(volumes))
	volumeSurface.AddAxis(chart.NewValueAxis(core.Vertical))
	volumeSurface.AddAxis(chart.NewBarAxisX())

	price := composite.AddChart(priceSurface, 3,
		chart.WithCrossHairX(chart.NewCrossHairBarX(chart.NewBarAxisX())),
		chart.WithCrossHairY(chart.NewCrossHairY(chart.NewValueAxis(core.Vertical))),
	)
	volume := composite.AddChart(volumeSurface, 1,
		chart.WithCrossHairX(chart.NewCrossHairBarX(chart.NewBarAxisX())),
	)
	price.LinkXTo(volume)

	return composite
}

func runStats(cmd *cobra.Command, args []string) error {
	loadConfig()

	log, err := newLogger()
	if err != nil {
		return err
	}

	source, err := loadCandles(log)
	if err != nil {
		return err
	}

	closes := source.Closes()
	summary := metric.Summarize(closes)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.AppendBulk([][]string{
		{"Candles", fmt.Sprintf("%d", summary.Count)},
		{"Mean", fmt.Sprintf("%.4f", summary.Mean)},
		{"StdDev", fmt.Sprintf("%.4f", summary.StdDev)},
		{"Min", fmt.Sprintf("%.4f", summary.Min)},
		{"Max", fmt.Sprintf("%.4f", summary.Max)},
		{"Change", fmt.Sprintf("%.2f%%", summary.Change*100)},
	})
	table.Render()

	returns := make([]float64, 0, len(closes))
	for i := 1; i < len(closes); i++ {
		if closes[i-1] != 0 {
			returns = append(returns, (closes[i]-closes[i-1])/closes[i-1]*100)
		}
	}
	if len(returns) > 0 {
		fmt.Println("\nReturn distribution (%):")
		hist := histogram.Hist(15, returns)
		if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(10)); err != nil {
			return err
		}
	}

	return nil
}
