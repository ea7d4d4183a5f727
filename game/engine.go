package game

import (
	"fmt"
	"time"

	"timetrader/internal/id"
	"timetrader/journal"
	"timetrader/market"
)

// Engine owns every game-state transition. It is stateless over snapshots:
// each operation is a function of (snapshot, args) returning a new
// snapshot, so one Engine can serve any number of sequential sessions.
//
// Executed trades and post-operation valuations are mirrored into the
// journal as a side channel; journal failures never affect the returned
// snapshot or the error contract.
type Engine struct {
	market  *market.Service
	journal journal.Journal
}

// New builds an Engine over the given market data. A nil journal records
// nothing.
func New(m *market.Service, j journal.Journal) *Engine {
	if j == nil {
		j = journal.Noop{}
	}
	return &Engine{market: m, journal: j}
}

// NewState seeds a fresh session: the full calendar window, the starting
// bankroll, nothing held, paused at 1x.
func (e *Engine) NewState() GameState {
	start := market.SeriesStart
	end := market.Day(market.SeriesEnd.AddDate(0, 0, -1))

	return GameState{
		CurrentDate: start,
		StartDate:   start,
		EndDate:     end,
		Portfolio: Portfolio{
			Cash:       InitialCash,
			Holdings:   map[string]int{},
			TotalValue: InitialCash,
		},
		Playing: false,
		Speed:   MinSpeed,
		Symbols: e.market.Symbols(),
	}
}

// Buy purchases quantity shares of symbol at the snapshot's current date
// and price. It fails with ErrInsufficientFunds when the cost exceeds
// available cash, returning the input snapshot unchanged.
func (e *Engine) Buy(s GameState, symbol string, quantity int) (GameState, error) {
	price := e.market.Price(symbol, s.CurrentDate)
	cost := price * float64(quantity)

	if cost > s.Portfolio.Cash {
		return s, fmt.Errorf("buy %d %s at %.2f: %w", quantity, symbol, price, ErrInsufficientFunds)
	}

	next := s.clone()
	next.Portfolio.Cash -= cost
	next.Portfolio.Holdings[symbol] += quantity

	return e.execute(next, Transaction{
		ID:       id.New(),
		Symbol:   symbol,
		Side:     Buy,
		Quantity: quantity,
		Price:    price,
		Date:     s.CurrentDate,
		Total:    cost,
	}), nil
}

// Sell disposes quantity shares of symbol at the snapshot's current date
// and price. It fails with ErrInsufficientShares when quantity exceeds the
// held amount, returning the input snapshot unchanged. A holding sold down
// to zero is removed entirely.
func (e *Engine) Sell(s GameState, symbol string, quantity int) (GameState, error) {
	held := s.Portfolio.Holdings[symbol]
	if quantity > held {
		return s, fmt.Errorf("sell %d %s with %d held: %w", quantity, symbol, held, ErrInsufficientShares)
	}

	price := e.market.Price(symbol, s.CurrentDate)
	proceeds := price * float64(quantity)

	next := s.clone()
	next.Portfolio.Cash += proceeds
	if held == quantity {
		delete(next.Portfolio.Holdings, symbol)
	} else {
		next.Portfolio.Holdings[symbol] = held - quantity
	}

	return e.execute(next, Transaction{
		ID:       id.New(),
		Symbol:   symbol,
		Side:     Sell,
		Quantity: quantity,
		Price:    price,
		Date:     s.CurrentDate,
		Total:    proceeds,
	}), nil
}

// execute appends tx to next's log, revalues the portfolio at the current
// date and mirrors both into the journal.
func (e *Engine) execute(next GameState, tx Transaction) GameState {
	next.Transactions = append(next.Transactions, tx)
	next.Portfolio.TotalValue = e.PortfolioValue(next.Portfolio, next.CurrentDate)

	_ = e.journal.RecordTrade(journal.TradeRecord{
		ID:       tx.ID,
		Symbol:   tx.Symbol,
		Side:     string(tx.Side),
		Quantity: tx.Quantity,
		Price:    tx.Price,
		Total:    tx.Total,
		Date:     tx.Date,
	})
	e.recordValuation(next)

	return next
}

// AdvanceTime moves the clock forward by days calendar days, clamping at
// EndDate and then stepping over weekends, re-clamping if the step runs
// past the end. The result is always a weekday unless it is EndDate itself,
// which may fall on a weekend. The portfolio is revalued at the new date.
func (e *Engine) AdvanceTime(s GameState, days int) GameState {
	date := market.Day(s.CurrentDate).AddDate(0, 0, days)
	if date.After(s.EndDate) {
		date = s.EndDate
	}
	for !market.IsTradingDay(date) {
		date = date.AddDate(0, 0, 1)
		if date.After(s.EndDate) {
			date = s.EndDate
			break
		}
	}

	next := s.clone()
	next.CurrentDate = date
	next.Portfolio.TotalValue = e.PortfolioValue(next.Portfolio, date)
	e.recordValuation(next)

	return next
}

// SetSpeed clamps speed into [MinSpeed, MaxSpeed].
func (e *Engine) SetSpeed(s GameState, speed int) GameState {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}

	next := s.clone()
	next.Speed = speed
	return next
}

// TogglePlay flips the play/pause flag. The engine never drives the clock
// itself; whoever owns the session loop advances time while playing (see
// cmd/timetrader).
func (e *Engine) TogglePlay(s GameState) GameState {
	next := s.clone()
	next.Playing = !next.Playing
	return next
}

// Reset restores a fresh session at the existing start date. EndDate and
// the symbol list are untouched.
func (e *Engine) Reset(s GameState) GameState {
	return e.ResetFrom(s, s.StartDate)
}

// ResetFrom is Reset with a new start date.
func (e *Engine) ResetFrom(s GameState, start time.Time) GameState {
	start = market.Day(start)

	next := s.clone()
	next.StartDate = start
	next.CurrentDate = start
	next.Portfolio = Portfolio{
		Cash:       InitialCash,
		Holdings:   map[string]int{},
		TotalValue: InitialCash,
	}
	next.Transactions = nil
	next.Playing = false
	next.Speed = MinSpeed
	return next
}

// PortfolioValue prices p at date: cash plus every holding at that day's
// close.
func (e *Engine) PortfolioValue(p Portfolio, date time.Time) float64 {
	total := p.Cash
	for symbol, quantity := range p.Holdings {
		total += e.market.Price(symbol, date) * float64(quantity)
	}
	return total
}

// Performance reports session returns. Day change compares the current
// total value against the same portfolio priced at the prior weekday; near
// the start of data this leans on the market service's first-entry
// fallback rather than refusing to answer.
func (e *Engine) Performance(s GameState) Performance {
	current := s.Portfolio.TotalValue
	totalReturn := current - InitialCash

	previous := e.PortfolioValue(s.Portfolio, market.PrevTradingDay(s.CurrentDate))

	perf := Performance{
		TotalReturn:        totalReturn,
		TotalReturnPercent: totalReturn / InitialCash * 100,
		DayChange:          current - previous,
	}
	if previous > 0 {
		perf.DayChangePercent = perf.DayChange / previous * 100
	}
	return perf
}

func (e *Engine) recordValuation(s GameState) {
	_ = e.journal.RecordValuation(journal.ValuationSnapshot{
		Date:       s.CurrentDate,
		Cash:       s.Portfolio.Cash,
		Positions:  len(s.Portfolio.Holdings),
		TotalValue: s.Portfolio.TotalValue,
	})
}
