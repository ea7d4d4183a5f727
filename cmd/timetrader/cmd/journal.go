package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"timetrader/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show trades recorded in a sqlite journal",
	Long: `List every trade recorded in the configured sqlite journal, oldest first.
Only the sqlite sink supports reading back; CSV journals are plain files.

Example:
  timetrader journal -f examples/configs/journaled.yaml`,
	RunE: runJournal,
}

func init() {
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Journal.Type != "sqlite" {
		return fmt.Errorf("journal command requires a sqlite journal (got %q)", cfg.Journal.Type)
	}

	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.ListTrades()
	if err != nil {
		return err
	}
	if len(trades) == 0 {
		fmt.Println("no trades recorded")
		return nil
	}

	buy := color.New(color.FgGreen)
	sell := color.New(color.FgRed)

	fmt.Printf("%-10s  %-4s  %-6s  %8s  %10s  %12s\n", "DATE", "SIDE", "SYMBOL", "QTY", "PRICE", "TOTAL")
	for _, t := range trades {
		style := buy
		if t.Side == "SELL" {
			style = sell
		}
		fmt.Printf("%-10s  %s  %-6s  %8d  %10.2f  %12.2f\n",
			t.Date.Format("2006-01-02"), style.Sprintf("%-4s", t.Side), t.Symbol, t.Quantity, t.Price, t.Total)
	}

	return nil
}
