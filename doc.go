// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Playcall API server.

Playcall is a backend for football coaching staffs: game plans with
situational play calls, daily practice scripts, call sheets, and a shared
play-template catalog, all scoped per authenticated coach.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	DATABASE_URL=postgres://... SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 4100 -t sqlite -d "file:playcall.db" -session-secret dev

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or SQLite DSN
  - SESSION_SECRET (-session-secret): Secret for session token HMAC

Optional settings:

  - PORT (-p): Server port (default: 4100)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - APP_ENV (-env): "development" (default) or "production"; production
    marks the session cookie Secure

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, collections, plays, weeks)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, metrics, CORS, JSON helpers
  - models: domain and request/response types
  - auth: password hashing and signed session tokens
  - store: whole-collection persistence (memory and SQL)
  - collection: the generic per-entity repository
  - playbook: tag inference and catalog lookups
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
