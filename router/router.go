// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/playcall-app/playcall/cliparse"
	"github.com/playcall-app/playcall/handlers"
	"github.com/playcall-app/playcall/middleware"
	"github.com/playcall-app/playcall/store"
)

func NewRouter(db *sql.DB, st store.CollectionStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	dataHandler := handlers.NewDataHandler(st, cfg)
	planResource := handlers.NewGamePlanResource(st, cfg)
	scriptResource := handlers.NewDailyScriptResource(st, cfg)
	sheetResource := handlers.NewCallSheetResource(st, cfg)
	templateHandler := handlers.NewTemplateHandler(st, cfg)
	playsHandler := handlers.NewPlaysHandler(db, cfg)
	weeksHandler := handlers.NewWeeksHandler(db, cfg)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Authentication
	mux.HandleFunc("POST /auth/register", wrap(authHandler.Register))
	mux.HandleFunc("POST /auth/login", wrap(authHandler.Login))
	mux.HandleFunc("GET /auth/me", wrap(authHandler.Me))
	mux.HandleFunc("POST /auth/logout", wrap(authHandler.Logout))

	// Demo-tier collections (whole-collection get/replace)
	mux.HandleFunc("GET /data/{resource}", wrap(dataHandler.Get))
	mux.HandleFunc("POST /data/{resource}", wrap(dataHandler.Save))

	// Game plans
	mux.HandleFunc("GET /plans", wrap(planResource.List))
	mux.HandleFunc("POST /plans", wrap(planResource.Create))
	mux.HandleFunc("PUT /plans/{id}", wrap(planResource.Update))
	mux.HandleFunc("DELETE /plans/{id}", wrap(planResource.Delete))

	// Daily practice scripts
	mux.HandleFunc("GET /scripts", wrap(scriptResource.List))
	mux.HandleFunc("POST /scripts", wrap(scriptResource.Create))
	mux.HandleFunc("PUT /scripts/{id}", wrap(scriptResource.Update))
	mux.HandleFunc("DELETE /scripts/{id}", wrap(scriptResource.Delete))

	// Call sheets
	mux.HandleFunc("GET /callsheets", wrap(sheetResource.List))
	mux.HandleFunc("POST /callsheets", wrap(sheetResource.Create))
	mux.HandleFunc("PUT /callsheets/{id}", wrap(sheetResource.Update))
	mux.HandleFunc("DELETE /callsheets/{id}", wrap(sheetResource.Delete))

	// Play-template catalog
	mux.HandleFunc("GET /templates", wrap(templateHandler.List))
	mux.HandleFunc("POST /templates", wrap(templateHandler.Create))
	mux.HandleFunc("PUT /templates/{id}", wrap(templateHandler.Update))
	mux.HandleFunc("DELETE /templates/{id}", wrap(templateHandler.Delete))
	mux.HandleFunc("GET /templates/next-number", wrap(templateHandler.NextNumber))
	mux.HandleFunc("GET /templates/search", wrap(templateHandler.Search))

	// Relational tier
	mux.HandleFunc("GET /plays", wrap(playsHandler.Get))
	mux.HandleFunc("POST /plays", wrap(playsHandler.Save))
	mux.HandleFunc("GET /weeks", wrap(weeksHandler.Get))
	mux.HandleFunc("POST /weeks", wrap(weeksHandler.Save))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("playcall API v1"))
	})

	return mux
}
