package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
)

// WorkspaceEntry is one workspace and the artifacts it contains
type WorkspaceEntry struct {
	Repo     string
	RecipeID string
	Files    []string
}

// RenderWorkspaceTree renders workspaces grouped by repository
// Example output:
//
//	/scratch/dev
//	╰─ laraPPr/lammps
//	   ├─ pr_42_cm_abc123
//	   │  ╰─ LAMMPS-2Aug2023_update2-foss-2023a-kokkos-dev_OBMD.eb
//	   ╰─ pr_43_cm_def456 (empty)
func RenderWorkspaceTree(root string, entries []WorkspaceEntry) string {
	if len(entries) == 0 {
		return TreeRootStyle.Render(root) + "\n" + Dim("  No workspaces yet")
	}

	t := tree.Root(TreeRootStyle.Render(root))

	var repoNode *tree.Tree
	currentRepo := ""
	for _, entry := range entries {
		if repoNode == nil || entry.Repo != currentRepo {
			repoNode = tree.Root(Highlight(entry.Repo))
			t.Child(repoNode)
			currentRepo = entry.Repo
		}

		if len(entry.Files) == 0 {
			repoNode.Child(fmt.Sprintf("%s %s", entry.RecipeID, Dim("(empty)")))
			continue
		}

		wsNode := tree.Root(Bold(entry.RecipeID))
		for _, file := range entry.Files {
			wsNode.Child(file)
		}
		repoNode.Child(wsNode)
	}

	t.Enumerator(getRoundedEnumerator()).
		EnumeratorStyle(TreeEnumeratorStyle).
		Indenter(RenderTreeIndenter())

	return t.String()
}

// getRoundedEnumerator returns a custom rounded enumerator for trees
func getRoundedEnumerator() tree.Enumerator {
	return func(children tree.Children, i int) string {
		if children.Length() == 0 {
			return ""
		}
		if i == children.Length()-1 {
			return "╰─ "
		}
		return "├─ "
	}
}

// RenderTreeIndenter keeps the vertical line for all but the last child
func RenderTreeIndenter() tree.Indenter {
	return func(children tree.Children, i int) string {
		if children.Length() == 0 {
			return ""
		}
		if i == children.Length()-1 {
			return "   "
		}
		return "│  "
	}
}
