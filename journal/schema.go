// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS fills (
	fill_id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	day INTEGER NOT NULL,
	side TEXT NOT NULL,
	shares INTEGER NOT NULL,
	price REAL NOT NULL,
	gross REAL NOT NULL,
	fee REAL NOT NULL,
	total REAL NOT NULL,
	cash REAL NOT NULL,
	shares_after INTEGER NOT NULL,
	time DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS days (
	session_id TEXT NOT NULL,
	day INTEGER NOT NULL,
	open REAL NOT NULL,
	high REAL NOT NULL,
	low REAL NOT NULL,
	close REAL NOT NULL,
	news TEXT NOT NULL,
	cash REAL NOT NULL,
	shares INTEGER NOT NULL,
	equity REAL NOT NULL,
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fills_session ON fills(session_id, time);
CREATE INDEX IF NOT EXISTS idx_days_session ON days(session_id, day);
`
