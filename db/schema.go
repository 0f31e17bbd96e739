// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The SQL is kept to the
// dialect both SQLite and PostgreSQL accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Coaches
CREATE TABLE IF NOT EXISTS account (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name TEXT NOT NULL,
    team TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_account_email ON account(email);

-- Relational play tier. position preserves the caller's ordering; every save
-- replaces a user's rows wholesale.
CREATE TABLE IF NOT EXISTS play (
    id TEXT NOT NULL,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    play_number INTEGER NOT NULL DEFAULT 0,
    hash TEXT,
    personnel TEXT,
    formation TEXT,
    motion TEXT,
    front_blitz TEXT,
    coverage TEXT,
    notes TEXT,
    position INTEGER NOT NULL,
    PRIMARY KEY (user_id, id)
);

CREATE INDEX IF NOT EXISTS idx_play_user ON play(user_id);

-- Weeks
CREATE TABLE IF NOT EXISTS week (
    id TEXT NOT NULL,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    week_number INTEGER NOT NULL DEFAULT 0,
    opponent TEXT,
    game_date TEXT,
    position INTEGER NOT NULL,
    PRIMARY KEY (user_id, id)
);

CREATE INDEX IF NOT EXISTS idx_week_user ON week(user_id);

-- Play scripts (situational call lists attached to weeks)
CREATE TABLE IF NOT EXISTS play_script (
    id TEXT NOT NULL,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    situation_id TEXT,
    PRIMARY KEY (user_id, id)
);

-- Join tables. Ordered by position; replaced together with their parents.
CREATE TABLE IF NOT EXISTS week_play (
    user_id TEXT NOT NULL,
    week_id TEXT NOT NULL,
    play_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (user_id, week_id, position)
);

CREATE INDEX IF NOT EXISTS idx_week_play_week ON week_play(user_id, week_id);

CREATE TABLE IF NOT EXISTS week_script (
    user_id TEXT NOT NULL,
    week_id TEXT NOT NULL,
    script_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (user_id, week_id, position)
);

CREATE INDEX IF NOT EXISTS idx_week_script_week ON week_script(user_id, week_id);

CREATE TABLE IF NOT EXISTS script_play (
    user_id TEXT NOT NULL,
    script_id TEXT NOT NULL,
    play_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (user_id, script_id, position)
);

-- Serialized collections ("local storage" tier): one row per (user, key),
-- holding a whole JSON array.
CREATE TABLE IF NOT EXISTS collection (
    user_id TEXT NOT NULL,
    key TEXT NOT NULL,
    data TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (user_id, key)
);
`
