package game

import (
	"errors"
	"time"
)

// InitialCash is the bankroll every session starts with.
const InitialCash = 10000

// Playback speed bounds for the autoplay driver.
const (
	MinSpeed = 1
	MaxSpeed = 10
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// Side distinguishes buys from sells on a Transaction.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Transaction is one executed trade. The log is append-only within a
// session and cleared only by reset.
type Transaction struct {
	ID       string
	Symbol   string
	Side     Side
	Quantity int
	Price    float64
	Date     time.Time // simulated execution date, not wall clock
	Total    float64
}

// Portfolio is cash plus share counts. Holdings never carry a zero or
// negative entry. TotalValue is recomputed from market prices after every
// state change rather than patched incrementally.
type Portfolio struct {
	Cash       float64
	Holdings   map[string]int
	TotalValue float64
}

// clone returns a Portfolio sharing nothing with p.
func (p Portfolio) clone() Portfolio {
	holdings := make(map[string]int, len(p.Holdings))
	for symbol, qty := range p.Holdings {
		holdings[symbol] = qty
	}
	return Portfolio{Cash: p.Cash, Holdings: holdings, TotalValue: p.TotalValue}
}

// GameState is one immutable snapshot of a session. Engine operations take
// a snapshot and return a fresh one with nothing aliased between the two,
// so callers may keep or discard old snapshots freely.
type GameState struct {
	CurrentDate  time.Time
	StartDate    time.Time
	EndDate      time.Time
	Portfolio    Portfolio
	Transactions []Transaction
	Playing      bool
	Speed        int
	Symbols      []string
}

// clone deep-copies s.
func (s GameState) clone() GameState {
	next := s
	next.Portfolio = s.Portfolio.clone()
	next.Transactions = append([]Transaction(nil), s.Transactions...)
	next.Symbols = append([]string(nil), s.Symbols...)
	return next
}

// Performance summarizes a session's returns against the starting bankroll
// and the prior trading day.
type Performance struct {
	TotalReturn        float64
	TotalReturnPercent float64
	DayChange          float64
	DayChangePercent   float64
}
