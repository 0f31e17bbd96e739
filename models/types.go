// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Collection store keys - one namespaced key per client-visible collection
const (
	KeyGamePlans    = "gameplans"
	KeyDailyScripts = "dailyscripts"
	KeyCallSheets   = "callsheets"
	KeyTemplates    = "playdb"
)

// Data route resources (demo tier) are stored under a "data:" prefix so they
// never collide with the repository collections above.
const DataKeyPrefix = "data:"

// Valid resources for the /data/{resource} routes
const (
	ResourcePlays      = "plays"
	ResourceSituations = "situations"
	ResourceWeeks      = "weeks"
)

// SessionCookieName is the HTTP-only cookie carrying the signed session token
const SessionCookieName = "playcall_session"

// Domain types

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Name         string    `json:"name"`
	Team         string    `json:"team,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Play is a single call inside a situation, or a row in the relational tier.
type Play struct {
	ID         string `json:"id"`
	Number     int    `json:"number"`
	Hash       string `json:"hash,omitempty"`
	Personnel  string `json:"personnel,omitempty"`
	Formation  string `json:"formation,omitempty"`
	Motion     string `json:"motion,omitempty"`
	FrontBlitz string `json:"front_blitz,omitempty"`
	Coverage   string `json:"coverage,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Situation is a tactical category (e.g. "3rd & Short") holding ordered plays.
type Situation struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Plays []Play `json:"plays"`
}

// GamePlan is the top-level container for a week's strategy.
type GamePlan struct {
	ID         string      `json:"id"`
	Week       int         `json:"week"`
	Opponent   string      `json:"opponent"`
	GameDate   string      `json:"game_date,omitempty"`
	Situations []Situation `json:"situations"`
}

func (g GamePlan) EntityID() string { return g.ID }

// ScriptPeriod references a situation by id. The reference is weak: deleting
// the situation leaves the period pointing at nothing, and that is tolerated.
type ScriptPeriod struct {
	ID            string `json:"id"`
	Time          string `json:"time,omitempty"`
	Name          string `json:"name"`
	Focus         string `json:"focus,omitempty"`
	Personnel     string `json:"personnel,omitempty"`
	Notes         string `json:"notes,omitempty"`
	SituationID   string `json:"situation_id,omitempty"`
	SituationName string `json:"situation_name,omitempty"`
}

// DailyScript is a practice-session timeline.
type DailyScript struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Date       string         `json:"date,omitempty"`
	GamePlanID string         `json:"game_plan_id,omitempty"`
	Periods    []ScriptPeriod `json:"periods"`
}

func (d DailyScript) EntityID() string { return d.ID }

// CallSheet is a derived, ordered list of plays for in-game use.
type CallSheet struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	GamePlanID string `json:"game_plan_id,omitempty"`
	Plays      []Play `json:"plays"`
}

func (c CallSheet) EntityID() string { return c.ID }

// PlayTemplate is a reusable catalog entry, distinct from a Play instance
// inside a game plan. Number stays a string: the catalog allows non-numeric
// entries, which next-number computation skips.
type PlayTemplate struct {
	ID          string   `json:"id"`
	Number      string   `json:"number"`
	Name        string   `json:"name"`
	Formation   string   `json:"formation,omitempty"`
	Motion      string   `json:"motion,omitempty"`
	Personnel   string   `json:"personnel,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (p PlayTemplate) EntityID() string { return p.ID }

// PlayScript groups an ordered play-id list under a situation (relational tier).
type PlayScript struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	SituationID string   `json:"situation_id,omitempty"`
	PlayIDs     []string `json:"play_ids"`
}

// Week is the relational-tier week record. Scripts and the week's play pool
// are denormalized join rows in storage and expanded on read.
type Week struct {
	ID         string       `json:"id"`
	WeekNumber int          `json:"week_number"`
	Opponent   string       `json:"opponent"`
	GameDate   string       `json:"game_date,omitempty"`
	PlayIDs    []string     `json:"play_ids"`
	Scripts    []PlayScript `json:"scripts"`
}

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Team     string `json:"team"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SavePlaysRequest struct {
	Plays []Play `json:"plays"`
}

type SaveWeeksRequest struct {
	Weeks []Week `json:"weeks"`
}

// Response types

type UserResponse struct {
	User User `json:"user"`
}

type PlaysResponse struct {
	Plays []Play `json:"plays"`
}

type WeeksResponse struct {
	Weeks []Week `json:"weeks"`
}

type NextNumberResponse struct {
	Category   string `json:"category,omitempty"`
	NextNumber string `json:"next_number"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
