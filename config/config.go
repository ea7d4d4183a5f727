package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"timetrader/market"
)

// Config holds everything adjustable about a session: the stock catalog the
// generator walks, the random seed, and where (if anywhere) the journal
// writes. Game rules themselves are fixed and not configurable.
type Config struct {
	Stocks     []StockConfig    `json:"stocks" yaml:"stocks"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// StockConfig seeds one generated symbol.
type StockConfig struct {
	Symbol     string  `json:"symbol" yaml:"symbol"`
	Name       string  `json:"name" yaml:"name"`
	StartPrice float64 `json:"start_price" yaml:"start_price"`
}

// SimulationConfig controls series generation.
type SimulationConfig struct {
	// Seed for the price generator; 0 means seed from the clock, so each
	// session sees a different market.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// JournalConfig selects the journal sink.
type JournalConfig struct {
	Type           string `json:"type,omitempty" yaml:"type,omitempty"` // "csv", "sqlite" or empty for none
	TradesFile     string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	ValuationsFile string `json:"valuations_file,omitempty" yaml:"valuations_file,omitempty"`
	DBPath         string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Default returns a config with the built-in catalog, clock seeding and no
// journal.
func Default() *Config {
	var stocks []StockConfig
	for _, s := range market.DefaultCatalog() {
		stocks = append(stocks, StockConfig{Symbol: s.Symbol, Name: s.Name, StartPrice: s.StartPrice})
	}
	return &Config{Stocks: stocks}
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if len(c.Stocks) == 0 {
		return fmt.Errorf("at least one stock is required")
	}
	seen := map[string]bool{}
	for _, s := range c.Stocks {
		if s.Symbol == "" {
			return fmt.Errorf("stock symbol is required")
		}
		if seen[s.Symbol] {
			return fmt.Errorf("duplicate stock symbol: %s", s.Symbol)
		}
		seen[s.Symbol] = true
		if s.StartPrice <= 0 {
			return fmt.Errorf("stock %s: start_price must be positive", s.Symbol)
		}
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.ValuationsFile == "" {
			return fmt.Errorf("journal type csv requires trades_file and valuations_file")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal type sqlite requires db_path")
		}
	default:
		return fmt.Errorf("unknown journal type: %s", c.Journal.Type)
	}

	return nil
}

// Catalog converts the configured stocks for the generator.
func (c *Config) Catalog() []market.Stock {
	catalog := make([]market.Stock, 0, len(c.Stocks))
	for _, s := range c.Stocks {
		catalog = append(catalog, market.Stock{Symbol: s.Symbol, Name: s.Name, StartPrice: s.StartPrice})
	}
	return catalog
}
