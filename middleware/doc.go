// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

WithLogging logs request start/completion through slog with a per-request
id. WithMetrics records a prometheus counter and latency histogram keyed by
the matched route pattern. CORS handles cross-origin requests including
preflight. JSONResponse/ErrorResponse/ParseJSONBody are the shared JSON
plumbing used by every handler.
*/
package middleware
