// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP API.

Handlers are plain structs built with their dependencies (database handle,
collection store, config) injected at router construction; there is no
package-level state. Every data route authenticates the session cookie
itself and scopes all reads and writes by the authenticated user id.

Three families of routes:

  - auth: register, login, me, logout (bcrypt passwords, signed cookie)
  - collection-backed resources (game plans, daily scripts, call sheets,
    play templates, and the /data demo tier): whole-collection persistence
    through the injected store
  - relational tier (/plays, /weeks): normalized rows with replace-all
    saves performed as transactional delete-then-insert
*/
package handlers
