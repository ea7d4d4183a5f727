package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "journal.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('trades','valuations')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["valuations"])
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	first := TradeRecord{
		ID:       "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Symbol:   "AAPL",
		Side:     "BUY",
		Quantity: 10,
		Price:    150.25,
		Total:    1502.5,
		Date:     time.Date(2020, time.March, 16, 0, 0, 0, 0, time.UTC),
	}
	second := TradeRecord{
		ID:       "01BX5ZZKBKACTAV9WEVGEMMVRZ",
		Symbol:   "TSLA",
		Side:     "SELL",
		Quantity: 3,
		Price:    900,
		Total:    2700,
		Date:     time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC),
	}

	// Insert out of order; ListTrades must come back date-ordered.
	assert.NoError(t, j.RecordTrade(second))
	assert.NoError(t, j.RecordTrade(first))

	trades, err := j.ListTrades()
	require.NoError(t, err)
	require.Len(t, trades, 2)

	assert.Equal(t, first.ID, trades[0].ID)
	assert.Equal(t, second.ID, trades[1].ID)
	assert.Equal(t, first.Quantity, trades[0].Quantity)
	assert.InDelta(t, first.Total, trades[0].Total, 1e-9)
	assert.True(t, trades[0].Date.Equal(first.Date))
}

func TestSQLiteListValuations(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	for day := 1; day <= 3; day++ {
		err := j.RecordValuation(ValuationSnapshot{
			Date:       time.Date(2020, time.June, day, 0, 0, 0, 0, time.UTC),
			Cash:       10000 - float64(day)*100,
			Positions:  day,
			TotalValue: 10000 + float64(day)*50,
		})
		assert.NoError(t, err)
	}

	snaps, err := j.ListValuations()
	require.NoError(t, err)
	require.Len(t, snaps, 3)

	assert.Equal(t, 1, snaps[0].Positions)
	assert.Equal(t, 3, snaps[2].Positions)
	assert.InDelta(t, 10150, snaps[2].TotalValue, 1e-9)
}
