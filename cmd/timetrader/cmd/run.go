package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"timetrader/game"
	"timetrader/market"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a whole session hands-off and print the result",
	Long: `Run a complete session without interaction: optionally buy positions on day
one, then advance the clock a day at a time to the end of the window. With a
journal configured, every trade and daily valuation is recorded along the
way.

Example:
  timetrader run --hold AAPL:20 --hold TSLA:5
  timetrader run -f examples/configs/seeded.yaml --hold MSFT:10`,
	RunE: runRun,
}

var runHolds []string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayVar(&runHolds, "hold", nil, "position to buy on day one, as SYMBOL:QUANTITY (repeatable)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	j, err := newJournal(cfg)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	svc := newMarket(cfg)
	engine := game.New(svc, j)
	state := engine.NewState()

	for _, hold := range runHolds {
		symbol, quantity, err := parseHold(hold)
		if err != nil {
			return err
		}
		state, err = engine.Buy(state, symbol, quantity)
		if err != nil {
			return fmt.Errorf("open position %s: %w", hold, err)
		}
	}

	for !state.CurrentDate.Equal(state.EndDate) {
		state = engine.AdvanceTime(state, 1)
	}

	printSessionResult(os.Stdout, engine, svc, state)
	return nil
}

func parseHold(s string) (string, int, error) {
	symbol, qty, ok := strings.Cut(s, ":")
	if !ok {
		return "", 0, fmt.Errorf("invalid --hold %q: want SYMBOL:QUANTITY", s)
	}
	quantity, err := strconv.Atoi(qty)
	if err != nil || quantity <= 0 {
		return "", 0, fmt.Errorf("invalid --hold %q: quantity must be a positive integer", s)
	}
	return strings.ToUpper(strings.TrimSpace(symbol)), quantity, nil
}

func printSessionResult(w io.Writer, engine *game.Engine, svc *market.Service, state game.GameState) {
	perf := engine.Performance(state)

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Session Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Period:        %s .. %s\n",
		state.StartDate.Format("2006-01-02"), state.CurrentDate.Format("2006-01-02"))
	fmt.Fprintf(w, "Trades:        %d\n", len(state.Transactions))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Portfolio")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Cash:          %.2f\n", state.Portfolio.Cash)
	for _, symbol := range state.Symbols {
		quantity, ok := state.Portfolio.Holdings[symbol]
		if !ok {
			continue
		}
		price := svc.Price(symbol, state.CurrentDate)
		fmt.Fprintf(w, "%-6s         %d @ %.2f = %.2f\n", symbol, quantity, price, price*float64(quantity))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start Value:   %.2f\n", float64(game.InitialCash))
	fmt.Fprintf(w, "End Value:     %.2f\n", state.Portfolio.TotalValue)
	fmt.Fprintf(w, "Total Return:  %.2f (%.2f%%)\n", perf.TotalReturn, perf.TotalReturnPercent)
	fmt.Fprintf(w, "Day Change:    %.2f (%.2f%%)\n", perf.DayChange, perf.DayChangePercent)
}
