// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and request/response shapes shared by
the handlers, the collection repository, and the relational tier.

The coaching hierarchy is GamePlan -> Situation -> Play. DailyScript periods
and PlayScripts reference Situations by id only; those references are weak
and may dangle after a situation is deleted. PlayTemplate is the shared
catalog entry, independent of any game plan.

Types with an EntityID method can be managed by collection.Collection.
*/
package models
