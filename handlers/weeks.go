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

type WeeksHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewWeeksHandler(db *sql.DB, cfg cliparse.Config) *WeeksHandler {
	return &WeeksHandler{db: db, cfg: cfg}
}

// Get handles GET /weeks
// Returns the caller's weeks with nested join expansion: each week carries
// its ordered play-id pool (week_play) and its scripts (week_script ->
// play_script -> script_play).
func (h *WeeksHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r, h.cfg)
	if !ok {
		return
	}

	weeks, err := h.loadWeeks(userID)
	if err != nil {
		slog.Error("failed to load weeks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WeeksResponse{Weeks: weeks})
}

// Save handles POST /weeks
// Replaces the caller's weeks, scripts, and all join rows wholesale. The
// delete-all plus bulk insert runs inside one transaction; a mid-sequence
// failure rolls back instead of leaving the collection partially empty.
func (h *WeeksHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.SaveWeeksRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Weeks == nil {
		req.Weeks = []models.Week{}
	}
	for _, wk := range req.Weeks {
		if wk.ID == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "every week needs an id")
			return
		}
		for _, sc := range wk.Scripts {
			if sc.ID == "" {
				middleware.ErrorResponse(w, http.StatusBadRequest, "every script needs an id")
				return
			}
		}
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM script_play WHERE user_id = $1`,
		`DELETE FROM week_script WHERE user_id = $1`,
		`DELETE FROM week_play WHERE user_id = $1`,
		`DELETE FROM play_script WHERE user_id = $1`,
		`DELETE FROM week WHERE user_id = $1`,
	} {
		if _, err := tx.Exec(stmt, userID); err != nil {
			slog.Error("failed to clear weeks", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save weeks")
			return
		}
	}

	// A script may appear under more than one week; insert its rows once and
	// join it per week.
	insertedScripts := map[string]bool{}

	for wi, wk := range req.Weeks {
		if _, err := tx.Exec(`
			INSERT INTO week (id, user_id, week_number, opponent, game_date, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, wk.ID, userID, wk.WeekNumber, wk.Opponent, wk.GameDate, wi); err != nil {
			slog.Error("failed to insert week", "error", err, "week_id", wk.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save weeks")
			return
		}

		for pi, playID := range wk.PlayIDs {
			if _, err := tx.Exec(`
				INSERT INTO week_play (user_id, week_id, play_id, position)
				VALUES ($1, $2, $3, $4)
			`, userID, wk.ID, playID, pi); err != nil {
				slog.Error("failed to insert week_play", "error", err, "week_id", wk.ID)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save weeks")
				return
			}
		}

		for si, sc := range wk.Scripts {
			if !insertedScripts[sc.ID] {
				insertedScripts[sc.ID] = true
				if _, err := tx.Exec(`
					INSERT INTO play_script (id, user_id, name, situation_id)
					VALUES ($1, $2, $3, $4)
				`, sc.ID, userID, sc.Name, sc.SituationID); err != nil {
					slog.Error("failed to insert play_script", "error", err, "script_id", sc.ID)
					middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save weeks")
					return
				}
				for pj, playID := range sc.PlayIDs {
					if _, err := tx.Exec(`
						INSERT INTO script_play (user_id, script_id, play_id, position)
						VALUES ($1, $2, $3, $4)
					`, userID, sc.ID, playID, pj); err != nil {
						slog.Error("failed to insert script_play", "error", err, "script_id", sc.ID)
						middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save weeks")
						return
					}
				}
			}
			if _, err := tx.Exec(`
				INSERT INTO week_script (user_id, week_id, script_id, position)
				VALUES ($1, $2, $3, $4)
			`, userID, wk.ID, sc.ID, si); err != nil {
				slog.Error("failed to insert week_script", "error", err, "week_id", wk.ID)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save weeks")
				return
			}
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit weeks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save weeks")
		return
	}

	slog.Info("weeks saved", "user_id", userID, "count", len(req.Weeks))

	middleware.JSONResponse(w, http.StatusOK, models.WeeksResponse{Weeks: req.Weeks})
}

// loadWeeks reads each table fully before touching the next one, so it works
// with a single-connection pool.
func (h *WeeksHandler) loadWeeks(userID string) ([]models.Week, error) {
	weeks, index, err := h.queryWeeks(userID)
	if err != nil {
		return nil, err
	}

	if err := h.queryWeekPlays(userID, weeks, index); err != nil {
		return nil, err
	}

	scripts, err := h.queryScripts(userID)
	if err != nil {
		return nil, err
	}
	if err := h.queryScriptPlays(userID, scripts); err != nil {
		return nil, err
	}
	if err := h.queryWeekScripts(userID, weeks, index, scripts); err != nil {
		return nil, err
	}

	return weeks, nil
}

func (h *WeeksHandler) queryWeeks(userID string) ([]models.Week, map[string]int, error) {
	rows, err := h.db.Query(`
		SELECT id, week_number, opponent, game_date
		FROM week
		WHERE user_id = $1
		ORDER BY position
	`, userID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	weeks := []models.Week{}
	index := map[string]int{} // week id -> position in weeks
	for rows.Next() {
		var wk models.Week
		if err := rows.Scan(&wk.ID, &wk.WeekNumber, &wk.Opponent, &wk.GameDate); err != nil {
			return nil, nil, err
		}
		wk.PlayIDs = []string{}
		wk.Scripts = []models.PlayScript{}
		index[wk.ID] = len(weeks)
		weeks = append(weeks, wk)
	}
	return weeks, index, rows.Err()
}

func (h *WeeksHandler) queryWeekPlays(userID string, weeks []models.Week, index map[string]int) error {
	rows, err := h.db.Query(`
		SELECT week_id, play_id
		FROM week_play
		WHERE user_id = $1
		ORDER BY week_id, position
	`, userID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var weekID, playID string
		if err := rows.Scan(&weekID, &playID); err != nil {
			return err
		}
		if i, ok := index[weekID]; ok {
			weeks[i].PlayIDs = append(weeks[i].PlayIDs, playID)
		}
	}
	return rows.Err()
}

func (h *WeeksHandler) queryScripts(userID string) (map[string]models.PlayScript, error) {
	rows, err := h.db.Query(`
		SELECT id, name, situation_id
		FROM play_script
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scripts := map[string]models.PlayScript{}
	for rows.Next() {
		var sc models.PlayScript
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.SituationID); err != nil {
			return nil, err
		}
		sc.PlayIDs = []string{}
		scripts[sc.ID] = sc
	}
	return scripts, rows.Err()
}

func (h *WeeksHandler) queryScriptPlays(userID string, scripts map[string]models.PlayScript) error {
	rows, err := h.db.Query(`
		SELECT script_id, play_id
		FROM script_play
		WHERE user_id = $1
		ORDER BY script_id, position
	`, userID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var scriptID, playID string
		if err := rows.Scan(&scriptID, &playID); err != nil {
			return err
		}
		if sc, ok := scripts[scriptID]; ok {
			sc.PlayIDs = append(sc.PlayIDs, playID)
			scripts[scriptID] = sc
		}
	}
	return rows.Err()
}

func (h *WeeksHandler) queryWeekScripts(userID string, weeks []models.Week, index map[string]int, scripts map[string]models.PlayScript) error {
	rows, err := h.db.Query(`
		SELECT week_id, script_id
		FROM week_script
		WHERE user_id = $1
		ORDER BY week_id, position
	`, userID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var weekID, scriptID string
		if err := rows.Scan(&weekID, &scriptID); err != nil {
			return err
		}
		i, ok := index[weekID]
		if !ok {
			continue
		}
		if sc, ok := scripts[scriptID]; ok {
			weeks[i].Scripts = append(weeks[i].Scripts, sc)
		}
	}
	return rows.Err()
}
