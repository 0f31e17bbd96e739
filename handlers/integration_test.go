// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/playcall-app/playcall/models"
	"github.com/playcall-app/playcall/router"
	"github.com/playcall-app/playcall/store"
	"github.com/playcall-app/playcall/testutil"
)

// Full-stack flow through the real router: register, save plays, restart
// the server (new router over the same database), read them back.
func TestIntegration_PlaysSurviveRestart(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := router.NewRouter(conn, store.NewSQLStore(conn), cfg)

	// Register
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/auth/register", models.RegisterRequest{
		Email:    "coach2@example.com",
		Password: "gameday!",
		Name:     "Coach Two",
		Team:     "Wildcats",
	}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == models.SessionCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("registration did not set a session cookie")
	}

	// Registering the same email again is a 400
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/auth/register", models.RegisterRequest{
		Email: "coach2@example.com", Password: "x", Name: "Dup",
	}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Save two plays
	plays := []models.Play{
		{ID: "p1", Number: 1, Formation: "Gun Trips Rt"},
		{ID: "p2", Number: 2, Formation: "I-Form"},
	}
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/plays", models.SavePlaysRequest{Plays: plays}, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	// "Restart": a fresh router and store over the same database
	mux = router.NewRouter(conn, store.NewSQLStore(conn), cfg)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/plays", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PlaysResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Plays) != 2 || resp.Plays[0].ID != "p1" || resp.Plays[1].ID != "p2" {
		t.Errorf("plays did not survive restart: %+v", resp.Plays)
	}
}

// The collection resources go through the router too, so path values and
// method patterns are exercised end to end.
func TestIntegration_GamePlanLifecycle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := router.NewRouter(conn, store.NewSQLStore(conn), cfg)

	userID := testutil.CreateTestUser(t, conn, "coach@example.com", "pw")
	cookie := testutil.SessionCookie(cfg, userID)

	// Create
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/plans", models.GamePlan{
		ID: "gp1", Week: 5, Opponent: "Bears",
	}, cookie))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Update through the routed path
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("PUT", "/plans/gp1", models.GamePlan{
		ID: "gp1", Week: 5, Opponent: "Bears", GameDate: "2026-10-04",
	}, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Delete, then delete again (no-op)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("DELETE", "/plans/gp1", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("DELETE", "/plans/gp1", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	var del models.DeleteResponse
	testutil.AssertJSON(t, w, &del)
	if del.Deleted {
		t.Error("second delete should be a no-op")
	}

	// Without a session everything is 401
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/plans", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
