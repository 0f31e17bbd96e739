// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and signed session tokens.

# Session Tokens

Tokens have the shape <userID>.<issuedAt>.<signature>:

	token := auth.MintSession(userID, secret, time.Now())
	userID, err := auth.ParseSession(token, secret, time.Now())

The signature is HMAC-SHA256 over the first two segments, URL-safe base64
encoded without padding. Validation rejects bad signatures, malformed
tokens, and tokens older than SessionTTL (7 days). There is no server-side
session state: the token itself is the session.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
