package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"timetrader/config"
	"timetrader/journal"
	"timetrader/market"
)

var rootCmd = &cobra.Command{
	Use:   "timetrader",
	Short: "A historical stock-trading game for the terminal",
	Long: `Timetrader drops you into January 2020 with $10,000 of play money and four
years of generated market history ahead of you. Advance the clock at your
own pace, buy and sell, and see how the portfolio looks by the end of 2023.

The market is synthetic: a trend-biased random walk shaped after the real
regimes of those years (the 2020-21 tech run, the 2022 drawdown), generated
fresh per session unless a seed is configured.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var cfgPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "f", "", "path to config file (YAML or JSON)")
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgPath)
}

func newMarket(cfg *config.Config) *market.Service {
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return market.New(cfg.Catalog(), rand.New(rand.NewSource(seed)))
}

func newJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.ValuationsFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	default:
		return journal.Noop{}, nil
	}
}
