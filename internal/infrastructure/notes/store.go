// Package notes persists exported shopping lists to a local SQLite file.
// It backs the "export to notes" operation; the artifact id it returns is
// what the surrounding application hands to the user.
package notes

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/foodbook/backend/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS exported_lists (
	id         TEXT PRIMARY KEY,
	list_name  TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);`

// Store is a NoteStore over SQLite
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the SQLite database at dbPath and
// ensures the schema exists.
func NewStore(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open export database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to export database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create export schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save persists an exported list and returns its generated artifact id
func (s *Store) Save(ctx context.Context, note *domain.ExportedNote) (string, error) {
	if note == nil {
		return "", fmt.Errorf("nil note")
	}

	id := uuid.NewString()
	createdAt := note.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exported_lists (id, list_name, content, created_at) VALUES (?, ?, ?, ?)`,
		id, note.ListName, note.Content, createdAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert exported list: %w", err)
	}

	return id, nil
}

// Get retrieves a previously exported list by id
func (s *Store) Get(ctx context.Context, id string) (*domain.ExportedNote, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, list_name, content, created_at FROM exported_lists WHERE id = ?`, id)

	var note domain.ExportedNote
	if err := row.Scan(&note.ID, &note.ListName, &note.Content, &note.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to read exported list: %w", err)
	}

	return &note, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
