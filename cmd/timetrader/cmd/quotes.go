package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timetrader/market"
)

var quotesCmd = &cobra.Command{
	Use:   "quotes SYMBOL",
	Short: "Dump a symbol's generated series as CSV",
	Long: `Write the generated daily OHLCV series for one symbol to stdout (or a file)
as CSV, optionally restricted to a date range. Useful for plotting a
session's market or eyeballing what the generator produced for a seed.

Example:
  timetrader quotes AAPL
  timetrader quotes TSLA --from 2022-01-01 --to 2022-12-31 -o tsla-2022.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runQuotes,
}

var (
	quotesFrom string
	quotesTo   string
	quotesOut  string
)

func init() {
	rootCmd.AddCommand(quotesCmd)

	quotesCmd.Flags().StringVar(&quotesFrom, "from", "", "start date (YYYY-MM-DD, default window start)")
	quotesCmd.Flags().StringVar(&quotesTo, "to", "", "end date (YYYY-MM-DD, default window end)")
	quotesCmd.Flags().StringVarP(&quotesOut, "out", "o", "", "output file (default stdout)")
}

func runQuotes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	from, to := market.SeriesStart, market.SeriesEnd
	if quotesFrom != "" {
		if from, err = time.Parse("2006-01-02", quotesFrom); err != nil {
			return fmt.Errorf("parse --from: %w", err)
		}
	}
	if quotesTo != "" {
		if to, err = time.Parse("2006-01-02", quotesTo); err != nil {
			return fmt.Errorf("parse --to: %w", err)
		}
	}

	symbol := strings.ToUpper(args[0])
	points := newMarket(cfg).Range(symbol, from, to)
	if len(points) == 0 {
		return fmt.Errorf("no data for %s in %s..%s", symbol,
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	out := os.Stdout
	if quotesOut != "" {
		out, err = os.Create(quotesOut)
		if err != nil {
			return err
		}
		defer out.Close()
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"date", "open", "high", "low", "close", "volume"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			p.Date.Format("2006-01-02"),
			strconv.FormatFloat(p.Open, 'f', 2, 64),
			strconv.FormatFloat(p.High, 'f', 2, 64),
			strconv.FormatFloat(p.Low, 'f', 2, 64),
			strconv.FormatFloat(p.Close, 'f', 2, 64),
			strconv.FormatInt(p.Volume, 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
