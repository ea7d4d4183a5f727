package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"timetrader/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive trading session",
	Long: `Open the interactive session view. The left pane lists the market with a
price chart for the selected symbol; the right shows the portfolio and
recent trades.

Keys:
  space      play / pause
  n, w, m    advance a day / week / month
  up, down   select symbol
  b, s       buy / sell the selected symbol
  + / -      playback speed
  r          reset the session
  q          quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
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

	p := tea.NewProgram(newSessionModel(engine, svc), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
