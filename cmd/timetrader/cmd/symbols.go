package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"timetrader/market"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the tradable symbols and how their series played out",
	RunE:  runSymbols,
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}

func runSymbols(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := newMarket(cfg)

	gain := color.New(color.FgGreen, color.Bold)
	loss := color.New(color.FgRed, color.Bold)

	fmt.Printf("%-6s  %-22s  %10s  %10s  %9s\n", "SYMBOL", "NAME", "FIRST", "LAST", "CHANGE")
	for _, symbol := range svc.Symbols() {
		points := svc.Range(symbol, market.SeriesStart, market.SeriesEnd)
		if len(points) == 0 {
			continue
		}

		first := points[0].Close
		last := points[len(points)-1].Close
		changePct := (last - first) / first * 100

		style := gain
		if changePct < 0 {
			style = loss
		}
		fmt.Printf("%-6s  %-22s  %10.2f  %10.2f  %s\n",
			symbol, svc.Name(symbol), first, last, style.Sprintf("%+8.2f%%", changePct))
	}

	return nil
}
