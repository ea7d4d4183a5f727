package market

import (
	"math"
	"math/rand"
	"time"
)

// Volatility bounds the daily fractional price swing applied on top of the
// regime trend.
const Volatility = 0.02

// Generate builds the full weekday OHLCV history for every stock in the
// catalog, walking the calendar from SeriesStart up to SeriesEnd. Each
// day's close becomes the next day's open. The caller owns rng; pass a
// seeded source to make the series reproducible.
func Generate(catalog []Stock, rng *rand.Rand) map[string][]PricePoint {
	series := make(map[string][]PricePoint, len(catalog))
	for _, stock := range catalog {
		series[stock.Symbol] = generateSeries(stock, rng)
	}
	return series
}

func generateSeries(stock Stock, rng *rand.Rand) []PricePoint {
	var points []PricePoint

	price := stock.StartPrice
	for d := SeriesStart; d.Before(SeriesEnd); d = d.AddDate(0, 0, 1) {
		if !IsTradingDay(d) {
			continue
		}

		open := price
		change := open * dailyChange(stock.Symbol, d, rng)
		close := math.Max(0.01, open+change)

		// High and low bracket the open/close by up to twice the day's move.
		dayRange := math.Abs(change) * 2
		high := math.Max(open, close) + dayRange*rng.Float64()
		low := math.Min(open, close) - dayRange*rng.Float64()

		points = append(points, PricePoint{
			Symbol: stock.Symbol,
			Name:   stock.Name,
			Date:   d,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: rng.Int63n(10_000_000) + 1_000_000,
		})

		price = close
	}

	return points
}

// dailyChange is the fractional move for one day: regime trend plus uniform
// noise in [-Volatility, Volatility).
func dailyChange(symbol string, d time.Time, rng *rand.Rand) float64 {
	noise := (rng.Float64() - 0.5) * 2 * Volatility
	return trendBias(symbol, d) + noise
}

// trendBias encodes the simulated market regimes per symbol and period.
func trendBias(symbol string, d time.Time) float64 {
	year, month := d.Year(), d.Month()

	var bias float64
	switch {
	case symbol == "TSLA":
		switch {
		case year == 2020 || year == 2021:
			bias = 0.001 // bull run
		case year == 2022:
			bias = -0.002 // bear market
		default:
			bias = 0.0005
		}
	case symbol == "AAPL" || symbol == "GOOGL" || symbol == "MSFT":
		switch {
		case year == 2020 && month >= time.April:
			bias = 0.0015 // covid recovery
		case year == 2022:
			bias = -0.001 // rate hikes
		default:
			bias = 0.0008
		}
	default:
		bias = 0.0005 // modest growth
	}

	// Seasonal adjustments: year-end rally, early-autumn drag.
	if month == time.December || month == time.January {
		bias += 0.0003
	}
	if month == time.September || month == time.October {
		bias -= 0.0002
	}

	return bias
}
