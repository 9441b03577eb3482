package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"gostformatter/classification"
)

// DBConfig настройки пула соединений
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// CorpusDB обертка для работы с базой корпуса библиографических записей
type CorpusDB struct {
	conn *sql.DB
}

// CorpusRecord одна запись корпуса в базе
type CorpusRecord struct {
	ID         int                     `json:"id"`
	SourceType classification.Category `json:"source_type"`
	Example    string                  `json:"example"`
	Origin     string                  `json:"origin"`
	Confidence int                     `json:"confidence"`
	CreatedAt  time.Time               `json:"created_at"`
}

// CorpusStats сводка по содержимому базы
type CorpusStats struct {
	Total         int                             `json:"total"`
	ByType        map[classification.Category]int `json:"by_type"`
	ByOrigin      map[string]int                  `json:"by_origin"`
	AvgConfidence float64                         `json:"avg_confidence"`
}

// NewCorpusDB создает новое подключение к базе корпуса
func NewCorpusDB(dbPath string) (*CorpusDB, error) {
	return NewCorpusDBWithConfig(dbPath, DBConfig{})
}

// NewCorpusDBWithConfig создает новое подключение к базе корпуса с конфигурацией
func NewCorpusDBWithConfig(dbPath string, config DBConfig) (*CorpusDB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus database: %w", err)
	}

	// Настройка connection pooling
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(25)
	}

	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(5)
	}

	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping corpus database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// SQLite по умолчанию использует UTF-8, но явно указываем это
	if _, err := conn.Exec("PRAGMA encoding = 'UTF-8'"); err != nil {
		log.Printf("Warning: failed to set UTF-8 encoding: %v", err)
	}

	corpusDB := &CorpusDB{conn: conn}

	if err := InitCorpusSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize corpus schema: %w", err)
	}

	return corpusDB, nil
}

// Close закрывает подключение к базе корпуса
func (db *CorpusDB) Close() error {
	return db.conn.Close()
}

// GetConnection возвращает указатель на sql.DB для прямого доступа
func (db *CorpusDB) GetConnection() *sql.DB {
	return db.conn
}

// InsertRecord сохраняет одну запись корпуса и возвращает её ID.
func (db *CorpusDB) InsertRecord(rec CorpusRecord) (int, error) {
	result, err := db.conn.Exec(`
		INSERT INTO corpus_records (source_type, example, origin, confidence)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(example) DO UPDATE SET
			source_type = excluded.source_type,
			origin = excluded.origin,
			confidence = excluded.confidence
	`, string(rec.SourceType), rec.Example, rec.Origin, rec.Confidence)
	if err != nil {
		return 0, fmt.Errorf("failed to insert corpus record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get record ID: %w", err)
	}
	return int(id), nil
}

// InsertBatch сохраняет пакет записей в одной транзакции.
func (db *CorpusDB) InsertBatch(records []CorpusRecord) (int, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO corpus_records (source_type, example, origin, confidence)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(example) DO UPDATE SET
			source_type = excluded.source_type,
			origin = excluded.origin,
			confidence = excluded.confidence
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, rec := range records {
		if _, err := stmt.Exec(string(rec.SourceType), rec.Example, rec.Origin, rec.Confidence); err != nil {
			return inserted, fmt.Errorf("failed to insert record: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}

// GetRecord получает запись по ID.
func (db *CorpusDB) GetRecord(id int) (*CorpusRecord, error) {
	row := db.conn.QueryRow(`
		SELECT id, source_type, example, origin, confidence, created_at
		FROM corpus_records WHERE id = ?
	`, id)

	rec := &CorpusRecord{}
	var sourceType string
	if err := row.Scan(&rec.ID, &sourceType, &rec.Example, &rec.Origin, &rec.Confidence, &rec.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to get corpus record: %w", err)
	}
	rec.SourceType = classification.Category(sourceType)
	return rec, nil
}

// ListRecords возвращает записи с фильтрами по типу и источнику.
// limit <= 0 означает без ограничения.
func (db *CorpusDB) ListRecords(sourceType classification.Category, origin string, limit int) ([]CorpusRecord, error) {
	query := `
		SELECT id, source_type, example, origin, confidence, created_at
		FROM corpus_records
		WHERE 1=1
	`
	args := []interface{}{}

	if sourceType != "" {
		query += " AND source_type = ?"
		args = append(args, string(sourceType))
	}
	if origin != "" {
		query += " AND origin = ?"
		args = append(args, origin)
	}
	query += " ORDER BY id"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query corpus records: %w", err)
	}
	defer rows.Close()

	records := []CorpusRecord{}
	for rows.Next() {
		var rec CorpusRecord
		var st string
		if err := rows.Scan(&rec.ID, &st, &rec.Example, &rec.Origin, &rec.Confidence, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		rec.SourceType = classification.Category(st)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetStats возвращает сводку по базе корпуса.
func (db *CorpusDB) GetStats() (*CorpusStats, error) {
	stats := &CorpusStats{
		ByType:   make(map[classification.Category]int),
		ByOrigin: make(map[string]int),
	}

	if err := db.conn.QueryRow("SELECT COUNT(*) FROM corpus_records").Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	rows, err := db.conn.Query("SELECT source_type, COUNT(*) FROM corpus_records GROUP BY source_type")
	if err != nil {
		return nil, fmt.Errorf("failed to query type stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var st string
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, fmt.Errorf("failed to scan type stats: %w", err)
		}
		stats.ByType[classification.Category(st)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	originRows, err := db.conn.Query("SELECT origin, COUNT(*) FROM corpus_records GROUP BY origin")
	if err != nil {
		return nil, fmt.Errorf("failed to query origin stats: %w", err)
	}
	defer originRows.Close()
	for originRows.Next() {
		var origin string
		var n int
		if err := originRows.Scan(&origin, &n); err != nil {
			return nil, fmt.Errorf("failed to scan origin stats: %w", err)
		}
		stats.ByOrigin[origin] = n
	}
	if err := originRows.Err(); err != nil {
		return nil, err
	}

	err = db.conn.QueryRow("SELECT COALESCE(AVG(confidence), 0.0) FROM corpus_records").Scan(&stats.AvgConfidence)
	if err != nil {
		return nil, fmt.Errorf("failed to query avg confidence: %w", err)
	}

	return stats, nil
}

// DeleteByOrigin удаляет записи указанного источника и возвращает их число.
func (db *CorpusDB) DeleteByOrigin(origin string) (int, error) {
	result, err := db.conn.Exec("DELETE FROM corpus_records WHERE origin = ?", origin)
	if err != nil {
		return 0, fmt.Errorf("failed to delete records: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(n), nil
}
