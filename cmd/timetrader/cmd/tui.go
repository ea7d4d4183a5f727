package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timetrader/game"
	"timetrader/market"
)

const chartDays = 30

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	gainStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lossStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	errStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type sessionMode int

const (
	modeBrowse sessionMode = iota
	modeBuy
	modeSell
)

// tickMsg drives the autoplay clock.
type tickMsg time.Time

func tick(speed int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(speed), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sessionModel is the interactive session driver: it owns the current game
// snapshot, feeds user intent to the engine and, while playing, advances
// one day per tick at 1000/speed ms.
type sessionModel struct {
	engine *game.Engine
	market *market.Service

	state    game.GameState
	selected int
	mode     sessionMode
	input    textinput.Model
	errMsg   string
	width    int
}

func newSessionModel(engine *game.Engine, svc *market.Service) sessionModel {
	input := textinput.New()
	input.Placeholder = "quantity"
	input.CharLimit = 9
	input.Width = 12

	return sessionModel{
		engine: engine,
		market: svc,
		state:  engine.NewState(),
		input:  input,
	}
}

func (m sessionModel) Init() tea.Cmd {
	return nil
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if !m.state.Playing {
			return m, nil
		}
		m.state = m.engine.AdvanceTime(m.state, 1)
		if m.state.CurrentDate.Equal(m.state.EndDate) {
			// Terminal date reached: stop the clock.
			m.state = m.engine.TogglePlay(m.state)
			return m, nil
		}
		return m, tick(m.state.Speed)

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateTradeEntry(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m sessionModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ":
		if !m.state.Playing && m.state.CurrentDate.Equal(m.state.EndDate) {
			return m, nil
		}
		m.state = m.engine.TogglePlay(m.state)
		if m.state.Playing {
			return m, tick(m.state.Speed)
		}

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.state.Symbols)-1 {
			m.selected++
		}

	case "+", "=":
		m.state = m.engine.SetSpeed(m.state, m.state.Speed+1)

	case "-":
		m.state = m.engine.SetSpeed(m.state, m.state.Speed-1)

	case "n":
		m.state = m.engine.AdvanceTime(m.state, 1)

	case "w":
		m.state = m.engine.AdvanceTime(m.state, 7)

	case "m":
		m.state = m.engine.AdvanceTime(m.state, 30)

	case "b":
		m.mode = modeBuy
		m.errMsg = ""
		m.input.SetValue("")
		return m, m.input.Focus()

	case "s":
		m.mode = modeSell
		m.errMsg = ""
		m.input.SetValue("")
		return m, m.input.Focus()

	case "r":
		m.state = m.engine.Reset(m.state)
		m.errMsg = ""
	}

	return m, nil
}

func (m sessionModel) updateTradeEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		quantity, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil || quantity <= 0 {
			m.errMsg = "quantity must be a positive integer"
			return m, nil
		}

		symbol := m.state.Symbols[m.selected]
		var next game.GameState
		if m.mode == modeBuy {
			next, err = m.engine.Buy(m.state, symbol, quantity)
		} else {
			next, err = m.engine.Sell(m.state, symbol, quantity)
		}
		if err != nil {
			m.errMsg = err.Error()
		} else {
			m.state = next
			m.errMsg = ""
		}

		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m sessionModel) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(m.viewStocks()),
		panelStyle.Render(m.viewChart()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(m.viewPortfolio()),
		panelStyle.Render(m.viewTransactions()),
	)

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	if m.mode != modeBrowse {
		verb := "Buy"
		if m.mode == modeSell {
			verb = "Sell"
		}
		fmt.Fprintf(&b, "%s %s  %s  (enter to confirm, esc to cancel)\n",
			verb, m.state.Symbols[m.selected], m.input.View())
	}
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("space play/pause · n/w/m advance · b buy · s sell · +/- speed · r reset · q quit"))
	return b.String()
}

func (m sessionModel) viewHeader() string {
	status := "PAUSED"
	if m.state.Playing {
		status = fmt.Sprintf("PLAYING %dx", m.state.Speed)
	} else if m.state.CurrentDate.Equal(m.state.EndDate) {
		status = "SESSION OVER"
	}

	return fmt.Sprintf("%s   %s   %s",
		titleStyle.Render("timetrader"),
		m.state.CurrentDate.Format("Monday, January 2, 2006"),
		labelStyle.Render(status))
}

func (m sessionModel) viewStocks() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("MARKET"))
	b.WriteString("\n")

	for i, symbol := range m.state.Symbols {
		price := m.market.Price(symbol, m.state.CurrentDate)
		held := m.state.Portfolio.Holdings[symbol]

		line := fmt.Sprintf("%-6s %10.2f", symbol, price)
		if held > 0 {
			line += fmt.Sprintf("  x%d", held)
		}

		if i == m.selected {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m sessionModel) viewChart() string {
	symbol := m.state.Symbols[m.selected]
	points := m.market.Range(symbol,
		m.state.CurrentDate.AddDate(0, 0, -chartDays), m.state.CurrentDate)

	closes := make([]float64, 0, len(points))
	for _, p := range points {
		closes = append(closes, p.Close)
	}

	header := labelStyle.Render(fmt.Sprintf("%s · last %d days", m.market.Name(symbol), chartDays))
	if len(closes) < 2 {
		return header + "\nnot enough history yet"
	}

	trend := gainStyle
	if closes[len(closes)-1] < closes[0] {
		trend = lossStyle
	}
	return header + "\n" + trend.Render(sparkline(closes))
}

func (m sessionModel) viewPortfolio() string {
	perf := m.engine.Performance(m.state)

	signed := func(v, pct float64) string {
		s := fmt.Sprintf("%+.2f (%+.2f%%)", v, pct)
		if v < 0 {
			return lossStyle.Render(s)
		}
		return gainStyle.Render(s)
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("PORTFOLIO"))
	fmt.Fprintf(&b, "\nCash         %10.2f", m.state.Portfolio.Cash)
	fmt.Fprintf(&b, "\nTotal Value  %10.2f", m.state.Portfolio.TotalValue)
	fmt.Fprintf(&b, "\nTotal Return %s", signed(perf.TotalReturn, perf.TotalReturnPercent))
	fmt.Fprintf(&b, "\nDay Change   %s", signed(perf.DayChange, perf.DayChangePercent))
	return b.String()
}

func (m sessionModel) viewTransactions() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("RECENT TRADES"))

	txs := m.state.Transactions
	if len(txs) == 0 {
		b.WriteString("\nnone yet")
		return b.String()
	}

	start := 0
	if len(txs) > 5 {
		start = len(txs) - 5
	}
	for _, tx := range txs[start:] {
		style := gainStyle
		if tx.Side == game.Sell {
			style = lossStyle
		}
		fmt.Fprintf(&b, "\n%s %s %-6s %4d @ %8.2f",
			tx.Date.Format("2006-01-02"), style.Render(string(tx.Side)), tx.Symbol, tx.Quantity, tx.Price)
	}
	return b.String()
}

var sparks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders values as a single line of block characters scaled to
// the min/max of the window.
func sparkline(values []float64) string {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi == lo {
		return strings.Repeat("▄", len(values))
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / (hi - lo) * float64(len(sparks)-1))
		b.WriteRune(sparks[idx])
	}
	return b.String()
}
