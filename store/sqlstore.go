// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLStore keeps serialized collections in the relational collection table,
// one row per (user, key). Saves survive server restarts.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Load(ctx context.Context, userID, key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM collection WHERE user_id = $1 AND key = $2
	`, userID, key).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load collection %q: %w", key, err)
	}
	return data, true, nil
}

// Save replaces the row wholesale. Delete-then-insert inside one transaction
// keeps the replace atomic.
func (s *SQLStore) Save(ctx context.Context, userID, key string, data []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM collection WHERE user_id = $1 AND key = $2
	`, userID, key); err != nil {
		return fmt.Errorf("failed to clear collection %q: %w", key, err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO collection (user_id, key, data, updated_at)
		VALUES ($1, $2, $3, $4)
	`, userID, key, data, time.Now()); err != nil {
		return fmt.Errorf("failed to save collection %q: %w", key, err)
	}

	return tx.Commit()
}

func (s *SQLStore) Delete(ctx context.Context, userID, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM collection WHERE user_id = $1 AND key = $2
	`, userID, key)
	if err != nil {
		return fmt.Errorf("failed to delete collection %q: %w", key, err)
	}
	return nil
}
