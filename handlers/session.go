// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/playcall-app/playcall/auth"
	"github.com/playcall-app/playcall/cliparse"
	"github.com/playcall-app/playcall/middleware"
	"github.com/playcall-app/playcall/models"
)

// sessionUserID extracts and validates the session cookie, returning the
// authenticated user id. A missing cookie is unauthenticated, same as an
// invalid token.
func sessionUserID(r *http.Request, cfg cliparse.Config) (string, error) {
	c, err := r.Cookie(models.SessionCookieName)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	return auth.ParseSession(c.Value, cfg.SessionSecret, time.Now())
}

// requireSession writes a 401 and returns ok=false when the request has no
// valid session
func requireSession(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (string, bool) {
	userID, err := sessionUserID(r, cfg)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return userID, true
}

// setSessionCookie issues the HTTP-only session cookie. Secure is set only
// in production so local development over plain HTTP still works.
func setSessionCookie(w http.ResponseWriter, cfg cliparse.Config, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   cfg.Production(),
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, cfg cliparse.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Production(),
		SameSite: http.SameSiteLaxMode,
	})
}
