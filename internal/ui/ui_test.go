package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eessi/ebdev/internal/recipe"
)

func TestRenderWorkspaceTree(t *testing.T) {
	out := RenderWorkspaceTree("/dev", []WorkspaceEntry{
		{Repo: "laraPPr/lammps", RecipeID: "pr_42_cm_abc123", Files: []string{"LAMMPS.eb"}},
		{Repo: "laraPPr/lammps", RecipeID: "pr_43_cm_def456"},
		{Repo: "other/repo", RecipeID: "pr_1_cm_c0ffee", Files: []string{"c0ffee.patch"}},
	})

	assert.Contains(t, out, "/dev")
	assert.Equal(t, 1, strings.Count(out, "laraPPr/lammps"))
	assert.Contains(t, out, "pr_42_cm_abc123")
	assert.Contains(t, out, "LAMMPS.eb")
	assert.Contains(t, out, "(empty)")
	assert.Contains(t, out, "c0ffee.patch")
}

func TestRenderWorkspaceTree_Empty(t *testing.T) {
	assert.Contains(t, RenderWorkspaceTree("/dev", nil), "No workspaces yet")
}

func TestRenderPlaceholderTable(t *testing.T) {
	name, err := recipe.ParseName("LAMMPS-2Aug2023_update2-foss-2023a-kokkos.eb")
	assert.NoError(t, err)

	out := RenderPlaceholderTable([]recipe.Placeholder{{Name: name}})
	assert.Contains(t, out, "TOOLCHAIN")
	assert.Contains(t, out, "foss-2023a")
	assert.Contains(t, out, "2Aug2023_update2")
}

func TestRenderOutcome(t *testing.T) {
	tests := []struct {
		name     string
		outcome  *recipe.Outcome
		contains []string
		excludes []string
	}{
		{
			name:     "generated shows path",
			outcome:  &recipe.Outcome{Status: recipe.StatusGenerated, Message: "easyconfig was generated", Path: "/ws/x.eb"},
			contains: []string{"generated", "/ws/x.eb"},
		},
		{
			name:     "already generated hides path",
			outcome:  &recipe.Outcome{Status: recipe.StatusAlreadyGenerated, Message: "easyconfig is already generated", Path: "/ws"},
			contains: []string{"already generated"},
			excludes: []string{"\n"},
		},
		{
			name:     "unknown template",
			outcome:  &recipe.Outcome{Status: recipe.StatusUnknownTemplate, Message: "No config can be generated"},
			contains: []string{"unknown template", "No config can be generated"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderOutcome(tt.outcome)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
