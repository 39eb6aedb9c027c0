package history

import "database/sql"

// ResolutionsSchema defines the resolutions table
const ResolutionsSchema = `
CREATE TABLE IF NOT EXISTS resolutions (
    id TEXT PRIMARY KEY,
    player TEXT NOT NULL,
    sport TEXT,
    query TEXT NOT NULL,
    found INTEGER NOT NULL,
    price REAL,
    sample_count INTEGER,
    source TEXT,
    message TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_resolutions_created ON resolutions(created_at);
CREATE INDEX IF NOT EXISTS idx_resolutions_player ON resolutions(player);
`

// InitSchema ensures the resolutions table exists
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(ResolutionsSchema)
	return err
}
