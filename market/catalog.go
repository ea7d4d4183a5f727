package market

// Stock seeds one symbol's generated series.
type Stock struct {
	Symbol     string
	Name       string
	StartPrice float64
}

// DefaultCatalog returns the built-in set of tradable symbols. Start prices
// anchor the random walk on day one; they are not real quotes.
func DefaultCatalog() []Stock {
	return []Stock{
		{Symbol: "AAPL", Name: "Apple Inc.", StartPrice: 150},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", StartPrice: 2500},
		{Symbol: "MSFT", Name: "Microsoft Corp.", StartPrice: 300},
		{Symbol: "AMZN", Name: "Amazon.com Inc.", StartPrice: 3200},
		{Symbol: "TSLA", Name: "Tesla Inc.", StartPrice: 800},
		{Symbol: "META", Name: "Meta Platforms Inc.", StartPrice: 320},
		{Symbol: "NFLX", Name: "Netflix Inc.", StartPrice: 500},
		{Symbol: "NVDA", Name: "NVIDIA Corp.", StartPrice: 220},
	}
}
