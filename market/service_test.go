package market

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testSeries spans Thu 2020-01-02 .. Mon 2020-01-06 with a weekend gap.
func testSeries() map[string][]PricePoint {
	return map[string][]PricePoint{
		"AAPL": {
			{Symbol: "AAPL", Name: "Apple Inc.", Date: date(2020, time.January, 2), Open: 150, Close: 151, Volume: 2_000_000},
			{Symbol: "AAPL", Name: "Apple Inc.", Date: date(2020, time.January, 3), Open: 151, Close: 153, Volume: 2_000_000},
			{Symbol: "AAPL", Name: "Apple Inc.", Date: date(2020, time.January, 6), Open: 153, Close: 149, Volume: 2_000_000},
		},
	}
}

func TestPriceExactDate(t *testing.T) {
	t.Parallel()

	s := NewFromSeries(testSeries())
	assert.Equal(t, 153.0, s.Price("AAPL", date(2020, time.January, 3)))
}

func TestPriceFallsBackToLatestPrior(t *testing.T) {
	t.Parallel()

	s := NewFromSeries(testSeries())

	// Saturday and Sunday resolve to Friday's close.
	assert.Equal(t, 153.0, s.Price("AAPL", date(2020, time.January, 4)))
	assert.Equal(t, 153.0, s.Price("AAPL", date(2020, time.January, 5)))

	// Anything after the last point resolves to the last close.
	assert.Equal(t, 149.0, s.Price("AAPL", date(2020, time.February, 1)))
}

func TestPriceBeforeAllDataUsesFirstClose(t *testing.T) {
	t.Parallel()

	s := NewFromSeries(testSeries())
	assert.Equal(t, 151.0, s.Price("AAPL", date(2019, time.December, 31)))
}

func TestPriceUnknownSymbol(t *testing.T) {
	t.Parallel()

	s := NewFromSeries(testSeries())
	assert.Equal(t, 0.0, s.Price("ZZZZ", date(2020, time.January, 3)))
}

func TestPriceNormalizesTimeOfDay(t *testing.T) {
	t.Parallel()

	s := NewFromSeries(testSeries())
	noon := time.Date(2020, time.January, 3, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, 153.0, s.Price("AAPL", noon))
}

func TestRangeInclusiveBounds(t *testing.T) {
	t.Parallel()

	s := NewFromSeries(testSeries())

	got := s.Range("AAPL", date(2020, time.January, 3), date(2020, time.January, 6))
	if assert.Len(t, got, 2) {
		assert.Equal(t, date(2020, time.January, 3), got[0].Date)
		assert.Equal(t, date(2020, time.January, 6), got[1].Date)
	}

	// Bounds wider than the data return everything.
	assert.Len(t, s.Range("AAPL", date(2019, time.January, 1), date(2021, time.January, 1)), 3)

	// Unknown symbol yields nothing.
	assert.Empty(t, s.Range("ZZZZ", date(2020, time.January, 1), date(2020, time.December, 31)))
}

func TestSymbolsSorted(t *testing.T) {
	t.Parallel()

	s := New(DefaultCatalog(), rand.New(rand.NewSource(1)))
	assert.Equal(t, []string{"AAPL", "AMZN", "GOOGL", "META", "MSFT", "NFLX", "NVDA", "TSLA"}, s.Symbols())
}

func TestName(t *testing.T) {
	t.Parallel()

	s := NewFromSeries(testSeries())
	assert.Equal(t, "Apple Inc.", s.Name("AAPL"))
	assert.Equal(t, "ZZZZ", s.Name("ZZZZ"))
}
