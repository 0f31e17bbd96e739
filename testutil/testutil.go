// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/playcall-app/playcall/auth"
	"github.com/playcall-app/playcall/cliparse"
	"github.com/playcall-app/playcall/db"
	"github.com/playcall-app/playcall/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. The pool is pinned to one connection so the in-memory database is
// shared by every query in the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// A unique name per test keeps parallel tests isolated
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          4100,
		DatabaseURL:   "file:test?mode=memory",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
		Env:           cliparse.EnvDevelopment,
	}
}

// CreateTestUser inserts an account and returns the user id
func CreateTestUser(t *testing.T, conn *sql.DB, email, password string) string {
	t.Helper()

	userID := uuid.NewString()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO account (id, email, password_hash, name, team, created_at)
		VALUES ($1, $2, $3, 'Test Coach', 'Testers', $4)
	`, userID, email, hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// SessionCookie mints a valid session cookie for the user
func SessionCookie(cfg cliparse.Config, userID string) *http.Cookie {
	return &http.Cookie{
		Name:  models.SessionCookieName,
		Value: auth.MintSession(userID, cfg.SessionSecret, time.Now()),
	}
}

// SeedTestPlays inserts plays for a user, in the order given
func SeedTestPlays(t *testing.T, conn *sql.DB, userID string, plays []models.Play) {
	t.Helper()

	for i, p := range plays {
		_, err := conn.Exec(`
			INSERT INTO play (id, user_id, play_number, hash, personnel, formation, motion, front_blitz, coverage, notes, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, p.ID, userID, p.Number, p.Hash, p.Personnel, p.Formation, p.Motion, p.FrontBlitz, p.Coverage, p.Notes, i)
		if err != nil {
			t.Fatalf("Failed to seed play: %v", err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
