// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/playcall-app/playcall/cliparse"
	"github.com/playcall-app/playcall/middleware"
	"github.com/playcall-app/playcall/models"
	"github.com/playcall-app/playcall/store"
)

type DataHandler struct {
	store store.CollectionStore
	cfg   cliparse.Config
}

func NewDataHandler(st store.CollectionStore, cfg cliparse.Config) *DataHandler {
	return &DataHandler{store: st, cfg: cfg}
}

type dataEnvelope struct {
	Collection json.RawMessage `json:"collection"`
}

// Seed collections returned before a caller's first save.
var defaultCollections = map[string]json.RawMessage{
	models.ResourcePlays: json.RawMessage(`[
		{"id":"sample-play-1","number":1,"personnel":"11","formation":"Gun Trips Rt","front_blitz":"","coverage":"Cover 3","notes":"Opening script"},
		{"id":"sample-play-2","number":2,"personnel":"12","formation":"I-Form","motion":"Jet","coverage":"Cover 1","notes":""}
	]`),
	models.ResourceSituations: json.RawMessage(`[
		{"id":"sample-sit-1","name":"1st & 10","color":"#2d6cdf","plays":[]},
		{"id":"sample-sit-2","name":"3rd & Short","color":"#d9534f","plays":[]},
		{"id":"sample-sit-3","name":"Red Zone","color":"#5cb85c","plays":[]}
	]`),
	models.ResourceWeeks: json.RawMessage(`[
		{"id":"sample-week-1","week_number":1,"opponent":"TBD","play_ids":[],"scripts":[]}
	]`),
}

func validResource(resource string) bool {
	switch resource {
	case models.ResourcePlays, models.ResourceSituations, models.ResourceWeeks:
		return true
	}
	return false
}

// Get handles GET /data/{resource}
// Returns the caller's saved collection, or the default sample collection
// when nothing has been saved yet.
func (h *DataHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r, h.cfg)
	if !ok {
		return
	}

	resource := r.PathValue("resource")
	if !validResource(resource) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown resource")
		return
	}

	data, found, err := h.store.Load(r.Context(), userID, models.DataKeyPrefix+resource)
	if err != nil {
		slog.Error("failed to load collection", "resource", resource, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	if !found || !json.Valid(data) {
		if found {
			// Unreadable saved data: log and fall back to the sample
			slog.Warn("discarding unreadable collection", "resource", resource)
		}
		middleware.JSONResponse(w, http.StatusOK, dataEnvelope{Collection: defaultCollections[resource]})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, dataEnvelope{Collection: data})
}

// Save handles POST /data/{resource}
// Replaces the caller's entire stored collection with the request body.
// No schema validation beyond JSON well-formedness; repeating the same POST
// stores the same collection.
func (h *DataHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireSession(w, r, h.cfg)
	if !ok {
		return
	}

	resource := r.PathValue("resource")
	if !validResource(resource) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown resource")
		return
	}

	var req dataEnvelope
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Collection == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "collection is required")
		return
	}

	if err := h.store.Save(r.Context(), userID, models.DataKeyPrefix+resource, req.Collection); err != nil {
		slog.Error("failed to save collection", "resource", resource, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	slog.Info("collection saved", "user_id", userID, "resource", resource)

	middleware.JSONResponse(w, http.StatusOK, dataEnvelope{Collection: req.Collection})
}
