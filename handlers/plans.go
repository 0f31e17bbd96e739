// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/playcall-app/playcall/cliparse"
	"github.com/playcall-app/playcall/collection"
	"github.com/playcall-app/playcall/middleware"
	"github.com/playcall-app/playcall/models"
	"github.com/playcall-app/playcall/playbook"
	"github.com/playcall-app/playcall/store"
)

// Resource serves the uniform CRUD surface shared by every collection-backed
// entity kind. One instance per entity kind, all running through the same
// repository abstraction.
type Resource[T collection.Entity] struct {
	store   store.CollectionStore
	cfg     cliparse.Config
	key     string
	prepare func(T) T // fills server-side fields before an add
}

func NewResource[T collection.Entity](st store.CollectionStore, cfg cliparse.Config, key string, prepare func(T) T) *Resource[T] {
	if prepare == nil {
		prepare = func(e T) T { return e }
	}
	return &Resource[T]{store: st, cfg: cfg, key: key, prepare: prepare}
}

func (h *Resource[T]) load(w http.ResponseWriter, r *http.Request) (*collection.Collection[T], string, bool) {
	userID, ok := requireSession(w, r, h.cfg)
	if !ok {
		return nil, "", false
	}
	c, err := collection.Load[T](r.Context(), h.store, userID, h.key)
	if err != nil {
		slog.Error("failed to load collection", "key", h.key, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return nil, "", false
	}
	return c, userID, true
}

// List handles GET /{resource}
func (h *Resource[T]) List(w http.ResponseWriter, r *http.Request) {
	c, _, ok := h.load(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, c.List())
}

// Create handles POST /{resource}
func (h *Resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	c, userID, ok := h.load(w, r)
	if !ok {
		return
	}

	var entity T
	if err := middleware.ParseJSONBody(r, &entity); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	entity = h.prepare(entity)

	if err := c.Add(r.Context(), entity); err != nil {
		slog.Error("failed to persist collection", "key", h.key, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	slog.Info("entity added", "user_id", userID, "key", h.key, "id", entity.EntityID())

	middleware.JSONResponse(w, http.StatusCreated, entity)
}

// Update handles PUT /{resource}/{id}
func (h *Resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	c, userID, ok := h.load(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	var entity T
	if err := middleware.ParseJSONBody(r, &entity); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	updated, err := c.Update(r.Context(), id, entity)
	if err != nil {
		slog.Error("failed to persist collection", "key", h.key, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if !updated {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}

	slog.Info("entity updated", "user_id", userID, "key", h.key, "id", id)

	middleware.JSONResponse(w, http.StatusOK, entity)
}

// Delete handles DELETE /{resource}/{id}
// Deleting a nonexistent id is a no-op, reported in the response body, never
// an error.
func (h *Resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	c, userID, ok := h.load(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	_, existed := c.Find(id)
	if err := c.Delete(r.Context(), id); err != nil {
		slog.Error("failed to persist collection", "key", h.key, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	if existed {
		slog.Info("entity deleted", "user_id", userID, "key", h.key, "id", id)
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{Deleted: existed})
}

// Constructors for the four collection-backed resources. Missing ids get a
// generated one; everything else is stored as the client sent it.

func NewGamePlanResource(st store.CollectionStore, cfg cliparse.Config) *Resource[models.GamePlan] {
	return NewResource(st, cfg, models.KeyGamePlans, func(p models.GamePlan) models.GamePlan {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		return p
	})
}

func NewDailyScriptResource(st store.CollectionStore, cfg cliparse.Config) *Resource[models.DailyScript] {
	return NewResource(st, cfg, models.KeyDailyScripts, func(s models.DailyScript) models.DailyScript {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		return s
	})
}

func NewCallSheetResource(st store.CollectionStore, cfg cliparse.Config) *Resource[models.CallSheet] {
	return NewResource(st, cfg, models.KeyCallSheets, func(c models.CallSheet) models.CallSheet {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		return c
	})
}

// TemplateHandler is the play-template resource plus its catalog lookups.
type TemplateHandler struct {
	*Resource[models.PlayTemplate]
}

func NewTemplateHandler(st store.CollectionStore, cfg cliparse.Config) *TemplateHandler {
	res := NewResource(st, cfg, models.KeyTemplates, func(t models.PlayTemplate) models.PlayTemplate {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if len(t.Tags) == 0 {
			t.Tags = playbook.InferTags(t.Name, t.Formation, t.Motion, t.Category)
		}
		return t
	})
	return &TemplateHandler{Resource: res}
}

// NextNumber handles GET /templates/next-number?category=
func (h *TemplateHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	c, _, ok := h.load(w, r)
	if !ok {
		return
	}

	category := r.URL.Query().Get("category")
	middleware.JSONResponse(w, http.StatusOK, models.NextNumberResponse{
		Category:   category,
		NextNumber: playbook.NextNumber(c.List(), category),
	})
}

// Search handles GET /templates/search?name=
// Case-insensitive name lookup, first match wins.
func (h *TemplateHandler) Search(w http.ResponseWriter, r *http.Request) {
	c, _, ok := h.load(w, r)
	if !ok {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	tpl, found := playbook.FindTemplateByName(c.List(), name)
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Template not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tpl)
}
