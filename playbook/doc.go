// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package playbook holds the derived-value helpers for the play-template
// catalog: tag inference from a fixed rule table, case-insensitive name
// lookup, and next-available-number computation per category.
package playbook
