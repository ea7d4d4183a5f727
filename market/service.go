package market

import (
	"math/rand"
	"sort"
	"time"
)

// Service answers read-only price queries over generated series. Construct
// one per process and hand it to every consumer; it never mutates after New
// returns, so it is safe to share.
type Service struct {
	series map[string][]PricePoint
}

// New generates history for the catalog and wraps it in a Service.
func New(catalog []Stock, rng *rand.Rand) *Service {
	return NewFromSeries(Generate(catalog, rng))
}

// NewFromSeries wraps pre-built series, mainly for tests and tooling. Each
// slice must be ordered by date ascending.
func NewFromSeries(series map[string][]PricePoint) *Service {
	return &Service{series: series}
}

// Price returns the closing price for symbol on date. A date without an
// entry (weekends included) resolves to the latest close at or before it; a
// date before all data resolves to the first close. Unknown symbols price
// at 0.
func (s *Service) Price(symbol string, date time.Time) float64 {
	points := s.series[symbol]
	if len(points) == 0 {
		return 0
	}

	date = Day(date)
	i := sort.Search(len(points), func(i int) bool {
		return points[i].Date.After(date)
	})
	if i == 0 {
		return points[0].Close
	}
	return points[i-1].Close
}

// Range returns the points with start <= date <= end, ordered by date.
// Unknown symbols yield an empty slice.
func (s *Service) Range(symbol string, start, end time.Time) []PricePoint {
	start, end = Day(start), Day(end)

	var out []PricePoint
	for _, p := range s.series[symbol] {
		if p.Date.Before(start) {
			continue
		}
		if p.Date.After(end) {
			break
		}
		out = append(out, p)
	}
	return out
}

// Symbols lists every symbol with generated history, sorted.
func (s *Service) Symbols() []string {
	symbols := make([]string, 0, len(s.series))
	for symbol := range s.series {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Name returns the display name for symbol, falling back to the symbol
// itself when no series exists.
func (s *Service) Name(symbol string) string {
	if points := s.series[symbol]; len(points) > 0 {
		return points[0].Name
	}
	return symbol
}
