package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/scores"
)

// SQLiteStore keeps the table in a SQLite database, one row per entry.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens the database at path and runs migrations.
// The parent directory must already exist.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			rank INTEGER NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			date TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_rank ON high_scores(difficulty, rank);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads every difficulty list in rank order.
// An empty database yields ErrNotFound.
func (s *SQLiteStore) Load() (scores.Table, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, name, score, date
		 FROM high_scores
		 ORDER BY difficulty, rank`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	table := scores.Table{}
	for rows.Next() {
		var difficulty string
		var e scores.Entry
		if err := rows.Scan(&difficulty, &e.Name, &e.Score, &e.Date); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		table[difficulty] = append(table[difficulty], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	if len(table) == 0 {
		return nil, ErrNotFound
	}
	return table, nil
}

// Save replaces all stored rows with the table inside one transaction.
func (s *SQLiteStore) Save(table scores.Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM high_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO high_scores (difficulty, rank, name, score, date) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, difficulty := range table.Difficulties() {
		for rank, e := range table[difficulty] {
			if _, err := stmt.Exec(difficulty, rank, e.Name, e.Score, e.Date); err != nil {
				return fmt.Errorf("storage: cannot save high score: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit high scores: %w", err)
	}
	return nil
}
