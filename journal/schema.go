package journal

// Schema creates the transits table and its lookup indexes. Idempotent,
// so opening an existing database is safe.
const Schema = `
CREATE TABLE IF NOT EXISTS transits (
	id TEXT PRIMARY KEY,
	planet TEXT NOT NULL,
	angle TEXT NOT NULL,
	time_utc DATETIME NOT NULL,
	time_local TEXT NOT NULL,
	longitude REAL NOT NULL,
	sign TEXT NOT NULL,
	decan INTEGER NOT NULL,
	degree_in_sign REAL NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transits_time ON transits(time_utc);
CREATE INDEX IF NOT EXISTS idx_transits_planet ON transits(planet, time_utc);
`
