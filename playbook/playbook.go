// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package playbook

import (
	"strconv"
	"strings"

	"github.com/playcall-app/playcall/models"
)

// tagRule adds tags when the play name contains the substring
// (case-insensitive) or when formation/motion/play-type match exactly.
type tagRule struct {
	nameContains string
	formation    string
	motion       string
	playType     string
	tags         []string
}

// Rules are evaluated independently; overlapping rules may append duplicate
// tags and no de-duplication is performed.
var tagRules = []tagRule{
	{nameContains: "slant", tags: []string{"Quick Game", "Hot Route"}},
	{nameContains: "hitch", tags: []string{"Quick Game"}},
	{nameContains: "screen", tags: []string{"Screen", "Misdirection"}},
	{nameContains: "draw", tags: []string{"Misdirection"}},
	{nameContains: "boot", tags: []string{"Play Action", "Moving Pocket"}},
	{nameContains: "counter", tags: []string{"Gap Scheme", "Misdirection"}},
	{nameContains: "power", tags: []string{"Gap Scheme"}},
	{nameContains: "zone", tags: []string{"Zone Scheme"}},
	{nameContains: "vert", tags: []string{"Shot Play"}},
	{formation: "Empty", tags: []string{"Spread", "Quick Game"}},
	{formation: "I-Form", tags: []string{"Downhill Run"}},
	{motion: "Jet", tags: []string{"Jet Motion", "Misdirection"}},
	{motion: "Orbit", tags: []string{"Misdirection"}},
	{playType: "RPO", tags: []string{"RPO"}},
	{playType: "Play Action", tags: []string{"Play Action", "Shot Play"}},
}

// InferTags returns the tags implied by a play's name, formation, motion, and
// play type. Each rule fires independently; the result keeps rule order and
// may contain duplicates.
func InferTags(name, formation, motion, playType string) []string {
	lowerName := strings.ToLower(name)

	var tags []string
	for _, r := range tagRules {
		switch {
		case r.nameContains != "" && strings.Contains(lowerName, r.nameContains):
		case r.formation != "" && strings.EqualFold(formation, r.formation):
		case r.motion != "" && strings.EqualFold(motion, r.motion):
		case r.playType != "" && strings.EqualFold(playType, r.playType):
		default:
			continue
		}
		tags = append(tags, r.tags...)
	}
	return tags
}

// FindTemplateByName scans for the first template whose name matches
// case-insensitively. Returns ok=false when nothing matches.
func FindTemplateByName(templates []models.PlayTemplate, name string) (models.PlayTemplate, bool) {
	for _, tpl := range templates {
		if strings.EqualFold(tpl.Name, name) {
			return tpl, true
		}
	}
	return models.PlayTemplate{}, false
}

// NextNumber computes the next available play number within a category:
// max of the existing numeric numbers plus one, or 1 when the category is
// empty or holds only non-numeric numbers. An empty category matches all
// templates. Non-numeric numbers are silently excluded.
func NextNumber(templates []models.PlayTemplate, category string) string {
	max := 0
	for _, tpl := range templates {
		if category != "" && !strings.EqualFold(tpl.Category, category) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(tpl.Number))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
