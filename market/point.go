package market

import "time"

// PricePoint is one trading day of OHLCV data for a symbol. Points are
// immutable once generated and ordered by date within a series.
type PricePoint struct {
	Symbol string
	Name   string
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}
