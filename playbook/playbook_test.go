// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package playbook

import (
	"reflect"
	"testing"

	"github.com/playcall-app/playcall/models"
)

func TestInferTags(t *testing.T) {
	tests := []struct {
		name      string
		playName  string
		formation string
		motion    string
		playType  string
		want      []string
	}{
		{
			name:     "slant adds quick game and hot route",
			playName: "Twins Rt Slant",
			want:     []string{"Quick Game", "Hot Route"},
		},
		{
			name:     "name match is case-insensitive",
			playName: "DOUBLE SLANT",
			want:     []string{"Quick Game", "Hot Route"},
		},
		{
			name: "no rules fire",
			playName: "Toss Right",
			want: nil,
		},
		{
			name:      "independent rules may duplicate tags",
			playName:  "Empty Slant Jet",
			formation: "Empty",
			motion:    "Jet",
			// slant -> Quick Game, Hot Route; Empty -> Spread, Quick Game;
			// Jet -> Jet Motion, Misdirection. Quick Game appears twice.
			want: []string{"Quick Game", "Hot Route", "Spread", "Quick Game", "Jet Motion", "Misdirection"},
		},
		{
			name:     "play action type",
			playName: "Deep Cross",
			playType: "Play Action",
			want:     []string{"Play Action", "Shot Play"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferTags(tt.playName, tt.formation, tt.motion, tt.playType)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InferTags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindTemplateByName(t *testing.T) {
	templates := []models.PlayTemplate{
		{ID: "t1", Name: "Mesh"},
		{ID: "t2", Name: "Four Verts"},
		{ID: "t3", Name: "mesh"}, // duplicate name, first match wins
	}

	tpl, ok := FindTemplateByName(templates, "MESH")
	if !ok {
		t.Fatal("FindTemplateByName() did not find a case-insensitive match")
	}
	if tpl.ID != "t1" {
		t.Errorf("FindTemplateByName() returned %s, want first match t1", tpl.ID)
	}

	if _, ok := FindTemplateByName(templates, "Stick"); ok {
		t.Error("FindTemplateByName() matched a missing name")
	}
}

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name      string
		templates []models.PlayTemplate
		category  string
		want      string
	}{
		{
			name: "empty catalog",
			want: "1",
		},
		{
			name: "max plus one",
			templates: []models.PlayTemplate{
				{Number: "1", Category: "Run"},
				{Number: "3", Category: "Run"},
				{Number: "7", Category: "Run"},
			},
			category: "Run",
			want:     "8",
		},
		{
			name: "non-numeric numbers silently excluded",
			templates: []models.PlayTemplate{
				{Number: "2", Category: "Pass"},
				{Number: "x-77", Category: "Pass"},
				{Number: "", Category: "Pass"},
			},
			category: "Pass",
			want:     "3",
		},
		{
			name: "all non-numeric defaults to 1",
			templates: []models.PlayTemplate{
				{Number: "goal-line", Category: "Run"},
				{Number: "n/a", Category: "Run"},
			},
			category: "Run",
			want:     "1",
		},
		{
			name: "category filter",
			templates: []models.PlayTemplate{
				{Number: "9", Category: "Pass"},
				{Number: "2", Category: "Run"},
			},
			category: "Run",
			want:     "3",
		},
		{
			name: "empty category scans everything",
			templates: []models.PlayTemplate{
				{Number: "9", Category: "Pass"},
				{Number: "2", Category: "Run"},
			},
			want: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextNumber(tt.templates, tt.category); got != tt.want {
				t.Errorf("NextNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}
