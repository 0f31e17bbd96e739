// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package db creates the relational schema. The server runs against either
// PostgreSQL (lib/pq) or SQLite (modernc.org/sqlite); the schema and all
// queries stick to SQL both accept, including $1-style placeholders.
package db
