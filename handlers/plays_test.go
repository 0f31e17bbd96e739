// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/playcall-app/playcall/models"
	"github.com/playcall-app/playcall/testutil"
)

func TestPlays_SaveThenGet(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaysHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "coach@example.com", "pw")
	cookie := testutil.SessionCookie(cfg, userID)

	plays := []models.Play{
		{ID: "p2", Number: 2, Hash: "L", Personnel: "11", Formation: "Gun Trips Rt", Coverage: "Cover 3", Notes: "vs soft corners"},
		{ID: "p1", Number: 1, Hash: "R", Personnel: "12", Formation: "I-Form", Motion: "Jet", FrontBlitz: "Bear"},
	}

	w := httptest.NewRecorder()
	handler.Save(w, testutil.MakeRequest("POST", "/plays", models.SavePlaysRequest{Plays: plays}, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	// GET returns exactly those plays in the same order
	w = httptest.NewRecorder()
	handler.Get(w, testutil.MakeRequest("GET", "/plays", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PlaysResponse
	testutil.AssertJSON(t, w, &resp)
	if !reflect.DeepEqual(resp.Plays, plays) {
		t.Errorf("GET /plays = %+v, want %+v", resp.Plays, plays)
	}
}

func TestPlays_SaveIsIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaysHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "coach@example.com", "pw")
	cookie := testutil.SessionCookie(cfg, userID)

	plays := []models.Play{{ID: "p1", Number: 1}, {ID: "p2", Number: 2}}
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.Save(w, testutil.MakeRequest("POST", "/plays", models.SavePlaysRequest{Plays: plays}, cookie))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	w := httptest.NewRecorder()
	handler.Get(w, testutil.MakeRequest("GET", "/plays", nil, cookie))

	var resp models.PlaysResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Plays) != 2 {
		t.Errorf("Expected 2 plays after repeated save, got %d", len(resp.Plays))
	}
}

func TestPlays_SaveReplacesWholesale(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaysHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "coach@example.com", "pw")
	cookie := testutil.SessionCookie(cfg, userID)

	testutil.SeedTestPlays(t, conn, userID, []models.Play{
		{ID: "old1", Number: 1}, {ID: "old2", Number: 2}, {ID: "old3", Number: 3},
	})

	w := httptest.NewRecorder()
	handler.Save(w, testutil.MakeRequest("POST", "/plays",
		models.SavePlaysRequest{Plays: []models.Play{{ID: "new1", Number: 9}}}, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	handler.Get(w, testutil.MakeRequest("GET", "/plays", nil, cookie))

	var resp models.PlaysResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Plays) != 1 || resp.Plays[0].ID != "new1" {
		t.Errorf("Expected the save to replace everything, got %+v", resp.Plays)
	}
}

func TestPlays_EmptySaveClears(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaysHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "coach@example.com", "pw")
	cookie := testutil.SessionCookie(cfg, userID)

	testutil.SeedTestPlays(t, conn, userID, []models.Play{{ID: "p1", Number: 1}})

	w := httptest.NewRecorder()
	handler.Save(w, testutil.MakeRequest("POST", "/plays", models.SavePlaysRequest{}, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	handler.Get(w, testutil.MakeRequest("GET", "/plays", nil, cookie))

	var resp models.PlaysResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Plays) != 0 {
		t.Errorf("Expected empty collection, got %+v", resp.Plays)
	}
}

func TestPlays_ScopedByUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaysHandler(conn, cfg)

	u1 := testutil.CreateTestUser(t, conn, "one@example.com", "pw")
	u2 := testutil.CreateTestUser(t, conn, "two@example.com", "pw")

	testutil.SeedTestPlays(t, conn, u1, []models.Play{{ID: "mine", Number: 1}})

	w := httptest.NewRecorder()
	handler.Get(w, testutil.MakeRequest("GET", "/plays", nil, testutil.SessionCookie(cfg, u2)))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PlaysResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Plays) != 0 {
		t.Errorf("User 2 sees user 1's plays: %+v", resp.Plays)
	}
}

func TestPlays_RequiresSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaysHandler(conn, cfg)

	w := httptest.NewRecorder()
	handler.Get(w, testutil.MakeRequest("GET", "/plays", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	w = httptest.NewRecorder()
	handler.Save(w, testutil.MakeRequest("POST", "/plays", models.SavePlaysRequest{}))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestPlays_RejectsMissingID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaysHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "coach@example.com", "pw")
	cookie := testutil.SessionCookie(cfg, userID)

	w := httptest.NewRecorder()
	handler.Save(w, testutil.MakeRequest("POST", "/plays",
		models.SavePlaysRequest{Plays: []models.Play{{Number: 1}}}, cookie))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
