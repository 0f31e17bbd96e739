// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/playcall-app/playcall/auth"
	"github.com/playcall-app/playcall/cliparse"
	"github.com/playcall-app/playcall/middleware"
	"github.com/playcall-app/playcall/models"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	// Duplicate email is a 400, matching the client contract
	var existingID string
	err := h.db.QueryRow(`SELECT id FROM account WHERE email = $1`, req.Email).Scan(&existingID)
	if err == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != sql.ErrNoRows {
		slog.Error("failed to query account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		Team:      req.Team,
		CreatedAt: time.Now(),
	}

	_, err = h.db.Exec(`
		INSERT INTO account (id, email, password_hash, name, team, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Email, hash, user.Name, user.Team, user.CreatedAt)

	if err != nil {
		slog.Error("failed to insert account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("account registered", "user_id", user.ID)

	setSessionCookie(w, h.cfg, auth.MintSession(user.ID, h.cfg.SessionSecret, time.Now()))
	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{User: user})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	var hash string
	err := h.db.QueryRow(`
		SELECT id, email, password_hash, name, team, created_at
		FROM account
		WHERE email = $1
	`, req.Email).Scan(&user.ID, &user.Email, &hash, &user.Name, &user.Team, &user.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to query account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(hash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	slog.Info("login", "user_id", user.ID)

	setSessionCookie(w, h.cfg, auth.MintSession(user.ID, h.cfg.SessionSecret, time.Now()))
	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{User: user})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r, h.cfg)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var user models.User
	qerr := h.db.QueryRow(`
		SELECT id, email, name, team, created_at
		FROM account
		WHERE id = $1
	`, userID).Scan(&user.ID, &user.Email, &user.Name, &user.Team, &user.CreatedAt)

	if qerr == sql.ErrNoRows {
		// Valid session for an account that no longer exists
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if qerr != nil {
		slog.Error("failed to query account", "error", qerr)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{User: user})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.cfg)
	w.WriteHeader(http.StatusNoContent)
}
