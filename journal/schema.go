package journal

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price REAL NOT NULL,
	total REAL NOT NULL,
	date DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS valuations (
	date DATETIME NOT NULL,
	cash REAL NOT NULL,
	positions INTEGER NOT NULL,
	total_value REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
CREATE INDEX IF NOT EXISTS idx_valuations_date ON valuations(date);
`
