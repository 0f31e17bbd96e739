// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires every route to its handler using Go 1.22+ method
// patterns. All API routes run through the logging and metrics middleware;
// /health and /metrics are unwrapped.
package router
