package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Stocks, 8)
	assert.Equal(t, "AAPL", cfg.Stocks[0].Symbol)
	assert.Len(t, cfg.Catalog(), 8)
	assert.Zero(t, cfg.Simulation.Seed)
	assert.Empty(t, cfg.Journal.Type)
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "config.yaml", `
stocks:
  - symbol: AAPL
    name: Apple Inc.
    start_price: 150
simulation:
  seed: 42
journal:
  type: sqlite
  db_path: journal.db
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, cfg.Stocks, 1)
	assert.Equal(t, "Apple Inc.", cfg.Stocks[0].Name)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "config.json", `{
  "stocks": [{"symbol": "TSLA", "name": "Tesla Inc.", "start_price": 800}],
  "journal": {"type": "csv", "trades_file": "t.csv", "valuations_file": "v.csv"}
}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, cfg.Stocks, 1)
	assert.Equal(t, "TSLA", cfg.Stocks[0].Symbol)
	assert.Equal(t, "csv", cfg.Journal.Type)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"no_stocks", func(c *Config) { c.Stocks = nil }, "at least one stock"},
		{"empty_symbol", func(c *Config) { c.Stocks[0].Symbol = "" }, "symbol is required"},
		{"duplicate_symbol", func(c *Config) { c.Stocks[1].Symbol = c.Stocks[0].Symbol }, "duplicate"},
		{"bad_price", func(c *Config) { c.Stocks[0].StartPrice = 0 }, "start_price"},
		{"csv_missing_paths", func(c *Config) { c.Journal.Type = "csv" }, "csv requires"},
		{"sqlite_missing_path", func(c *Config) { c.Journal.Type = "sqlite" }, "db_path"},
		{"unknown_journal", func(c *Config) { c.Journal.Type = "parquet" }, "unknown journal type"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
