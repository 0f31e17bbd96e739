// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package collection is the one repository abstraction for every client-side
entity kind: game plans, daily scripts, call sheets, and play templates all
share the same List/Find/Add/Update/Delete contract, parameterized by entity
type.

A Collection is cheap to build: handlers load one per request, mutate it,
and let the mutation persist the full collection back through the injected
store. No cross-entity integrity is enforced - references between entities
are plain id strings and may dangle.
*/
package collection
