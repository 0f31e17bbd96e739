// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SessionTTL matches the 7-day session cookie lifetime.
const SessionTTL = 7 * 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token expired")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword creates a bcrypt hash of the given password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
// Returns nil on match.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// MintSession creates a signed session token for a user:
//
//	<userID>.<issuedAtUnix>.<signature>
//
// The signature is HMAC-SHA256 over "<userID>.<issuedAtUnix>", URL-safe
// base64 without padding. The token carries the user id and issue time in
// the clear; the signature is what makes it trustworthy.
func MintSession(userID, secret string, now time.Time) string {
	payload := userID + "." + strconv.FormatInt(now.Unix(), 10)
	return payload + "." + sign(payload, secret)
}

// ParseSession validates a session token and extracts the user id.
// Rejects malformed tokens, bad signatures, and tokens older than SessionTTL.
func ParseSession(token, secret string, now time.Time) (string, error) {
	i := strings.LastIndex(token, ".")
	if i < 0 {
		return "", ErrInvalidToken
	}
	payload, sig := token[:i], token[i+1:]

	if !hmac.Equal([]byte(sig), []byte(sign(payload, secret))) {
		return "", ErrInvalidToken
	}

	parts := strings.Split(payload, ".")
	if len(parts) != 2 || parts[0] == "" {
		return "", ErrInvalidToken
	}
	userID := parts[0]

	issued, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}
	if now.Sub(time.Unix(issued, 0)) > SessionTTL {
		return "", ErrTokenExpired
	}

	return userID, nil
}

func sign(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	sum := h.Sum(nil)
	// URL-safe base64 and trim padding for a cleaner token
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}
