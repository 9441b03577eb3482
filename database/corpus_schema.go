package database

import (
	"database/sql"
	"fmt"
)

// InitCorpusSchema создает схему базы корпуса, если её еще нет.
func InitCorpusSchema(conn *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS corpus_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_type TEXT NOT NULL,
		example TEXT NOT NULL UNIQUE,
		origin TEXT NOT NULL DEFAULT '',
		confidence INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_corpus_records_source_type ON corpus_records(source_type);
	CREATE INDEX IF NOT EXISTS idx_corpus_records_origin ON corpus_records(origin);
	`

	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create corpus schema: %w", err)
	}
	return nil
}
