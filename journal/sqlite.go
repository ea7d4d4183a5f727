package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite stores the journal in a local database so sessions can be
// inspected after the fact with the journal subcommand or plain sql.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades (id, symbol, side, quantity, price, total, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Symbol, t.Side, t.Quantity, t.Price, t.Total, t.Date,
	)
	return err
}

func (j *SQLite) RecordValuation(v ValuationSnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO valuations (date, cash, positions, total_value)
		VALUES (?, ?, ?, ?)`,
		v.Date, v.Cash, v.Positions, v.TotalValue,
	)
	return err
}

// ListTrades returns every recorded trade ordered by date, then ID, so the
// output matches execution order (IDs are time-sortable ULIDs).
func (j *SQLite) ListTrades() ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT id, symbol, side, quantity, price, total, date
		FROM trades
		ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var rec TradeRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Symbol,
			&rec.Side,
			&rec.Quantity,
			&rec.Price,
			&rec.Total,
			&rec.Date,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListValuations returns every valuation snapshot ordered by date.
func (j *SQLite) ListValuations() ([]ValuationSnapshot, error) {
	rows, err := j.db.Query(`
		SELECT date, cash, positions, total_value
		FROM valuations
		ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ValuationSnapshot
	for rows.Next() {
		var snap ValuationSnapshot
		if err := rows.Scan(&snap.Date, &snap.Cash, &snap.Positions, &snap.TotalValue); err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
