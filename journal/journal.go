package journal

import "time"

// TradeRecord is one executed buy or sell as written to a sink. Dates are
// simulated game dates, not wall clock.
type TradeRecord struct {
	ID       string
	Symbol   string
	Side     string
	Quantity int
	Price    float64
	Total    float64
	Date     time.Time
}

// ValuationSnapshot captures the portfolio after a state change.
type ValuationSnapshot struct {
	Date       time.Time
	Cash       float64
	Positions  int
	TotalValue float64
}

// Journal records a session's trades and valuations.
type Journal interface {
	RecordTrade(TradeRecord) error
	RecordValuation(ValuationSnapshot) error
	Close() error
}
