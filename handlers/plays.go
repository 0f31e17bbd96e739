// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/playcall-app/playcall/cliparse"
	"github.com/playcall-app/playcall/middleware"
	"github.com/playcall-app/playcall/models"
)

type PlaysHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPlaysHandler(db *sql.DB, cfg cliparse.Config) *PlaysHandler {
	return &PlaysHandler{db: db, cfg: cfg}
}

// Get handles GET /plays
// Returns the caller's plays in stored order.
func (h *PlaysHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r, h.cfg)
	if !ok {
		return
	}

	rows, err := h.db.Query(`
		SELECT id, play_number, hash, personnel, formation, motion, front_blitz, coverage, notes
		FROM play
		WHERE user_id = $1
		ORDER BY position
	`, userID)
	if err != nil {
		slog.Error("failed to query plays", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	plays := []models.Play{}
	for rows.Next() {
		var p models.Play
		if err := rows.Scan(&p.ID, &p.Number, &p.Hash, &p.Personnel, &p.Formation,
			&p.Motion, &p.FrontBlitz, &p.Coverage, &p.Notes); err != nil {
			slog.Error("failed to scan play", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		plays = append(plays, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read plays", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PlaysResponse{Plays: plays})
}

// Save handles POST /plays
// Replaces the caller's entire play collection: delete-all then bulk insert,
// inside one transaction so a failure can't leave the collection half-saved.
// Concurrent saves from the same account are last-write-wins.
func (h *PlaysHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.SavePlaysRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Plays == nil {
		req.Plays = []models.Play{}
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM play WHERE user_id = $1`, userID); err != nil {
		slog.Error("failed to clear plays", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save plays")
		return
	}

	for i, p := range req.Plays {
		if p.ID == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "every play needs an id")
			return
		}
		_, err := tx.Exec(`
			INSERT INTO play (id, user_id, play_number, hash, personnel, formation, motion, front_blitz, coverage, notes, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, p.ID, userID, p.Number, p.Hash, p.Personnel, p.Formation, p.Motion, p.FrontBlitz, p.Coverage, p.Notes, i)
		if err != nil {
			slog.Error("failed to insert play", "error", err, "play_id", p.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save plays")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit plays", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save plays")
		return
	}

	slog.Info("plays saved", "user_id", userID, "count", len(req.Plays))

	middleware.JSONResponse(w, http.StatusOK, models.PlaysResponse{Plays: req.Plays})
}
