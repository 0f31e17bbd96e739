// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists whole serialized collections keyed by (user, key).

The contract is deliberately blunt: Load returns the last saved bytes or
nothing, Save overwrites wholesale. There are no partial writes, no
versioning, and no schema migration - a format change simply makes old data
unreadable, and callers treat unreadable data as an empty collection.

Two implementations exist: MemoryStore (mutex-guarded map, demo tier and
tests) and SQLStore (one relational table, survives restarts). Both are
constructed at process start and injected into handlers; nothing here is
package-level mutable state.
*/
package store
