package market

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdaysInWindow() int {
	n := 0
	for d := SeriesStart; d.Before(SeriesEnd); d = d.AddDate(0, 0, 1) {
		if IsTradingDay(d) {
			n++
		}
	}
	return n
}

func TestGenerateCoversEveryWeekday(t *testing.T) {
	t.Parallel()

	series := Generate(DefaultCatalog(), rand.New(rand.NewSource(1)))
	want := weekdaysInWindow()

	for symbol, points := range series {
		assert.Len(t, points, want, "series length for %s", symbol)

		for _, p := range points {
			assert.True(t, IsTradingDay(p.Date), "%s has a weekend point at %s", symbol, p.Date)
			assert.False(t, p.Date.Before(SeriesStart), "%s has a point before the window", symbol)
			assert.True(t, p.Date.Before(SeriesEnd), "%s has a point past the window", symbol)
		}
	}
}

func TestGeneratePointShape(t *testing.T) {
	t.Parallel()

	stock := Stock{Symbol: "AAPL", Name: "Apple Inc.", StartPrice: 150}
	points := generateSeries(stock, rand.New(rand.NewSource(7)))
	require.NotEmpty(t, points)

	assert.Equal(t, 150.0, points[0].Open)

	for i, p := range points {
		assert.Equal(t, "AAPL", p.Symbol)
		assert.Equal(t, "Apple Inc.", p.Name)
		assert.GreaterOrEqual(t, p.Close, 0.01)
		assert.GreaterOrEqual(t, p.High, math.Max(p.Open, p.Close))
		assert.LessOrEqual(t, p.Low, math.Min(p.Open, p.Close))
		assert.GreaterOrEqual(t, p.Volume, int64(1_000_000))
		assert.Less(t, p.Volume, int64(11_000_000))

		if i > 0 {
			assert.Equal(t, points[i-1].Close, p.Open, "open must chain from prior close at %s", p.Date)
			assert.True(t, p.Date.After(points[i-1].Date), "dates must be ascending")
		}
	}
}

func TestGenerateDeterministicForEqualSeeds(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	a := Generate(catalog, rand.New(rand.NewSource(42)))
	b := Generate(catalog, rand.New(rand.NewSource(42)))

	assert.Equal(t, a, b)
}

func TestTrendBias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		symbol string
		d      time.Time
		want   float64
	}{
		{"tsla_bull_2020", "TSLA", date(2020, time.March, 2), 0.001},
		{"tsla_bull_2021", "TSLA", date(2021, time.June, 15), 0.001},
		{"tsla_bear_2022", "TSLA", date(2022, time.May, 2), -0.002},
		{"tsla_default_2023", "TSLA", date(2023, time.March, 1), 0.0005},
		{"aapl_pre_recovery", "AAPL", date(2020, time.February, 3), 0.0008},
		{"aapl_covid_recovery", "AAPL", date(2020, time.April, 1), 0.0015},
		{"msft_rate_hikes_2022", "MSFT", date(2022, time.June, 1), -0.001},
		{"googl_default", "GOOGL", date(2021, time.March, 1), 0.0008},
		{"other_modest_growth", "NFLX", date(2021, time.March, 1), 0.0005},
		{"year_end_rally", "NFLX", date(2021, time.December, 1), 0.0005 + 0.0003},
		{"january_rally", "NFLX", date(2021, time.January, 4), 0.0005 + 0.0003},
		{"september_drag", "NFLX", date(2021, time.September, 1), 0.0005 - 0.0002},
		{"october_drag", "NFLX", date(2021, time.October, 1), 0.0005 - 0.0002},
		{"tsla_bear_plus_rally", "TSLA", date(2022, time.December, 1), -0.002 + 0.0003},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, trendBias(tt.symbol, tt.d), 1e-12)
		})
	}
}

func TestDailyChangeBounded(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	d := date(2021, time.March, 1)

	for i := 0; i < 1000; i++ {
		change := dailyChange("NFLX", d, rng)
		assert.InDelta(t, 0.0005, change, Volatility, "change must stay within the volatility band around trend")
	}
}
