// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cliparse parses server configuration from CLI flags with
// environment-variable fallback. Flags win over env vars. The only
// environment-driven behavior switch is APP_ENV (-env), which controls
// whether the session cookie is marked Secure.
package cliparse
