package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eessi/ebdev/internal/model"
)

// Pad pads text to width
func Pad(text string, width int, align lipgloss.Position) string {
	return lipgloss.PlaceHorizontal(width, align, text)
}

// RenderKeyValueList renders aligned "key: value" lines in the order of keys
func RenderKeyValueList(pairs map[string]string, keys []string) string {
	var lines []string

	maxKeyLen := 0
	for _, key := range keys {
		maxKeyLen = max(maxKeyLen, lipgloss.Width(key))
	}

	for _, key := range keys {
		paddedKey := Pad(key, maxKeyLen, lipgloss.Left)
		keyStyled := DimStyle.Render(paddedKey + ":")
		lines = append(lines, fmt.Sprintf("%s %s", keyStyled, pairs[key]))
	}

	return strings.Join(lines, "\n")
}

// RenderPullRequest renders the fetched PR metadata
//
//	repo:   laraPPr/lammps #42
//	head:   obmd-kokkos
//	base:   develop_2Aug2023_update2
//	commit: abc123
func RenderPullRequest(pr *model.PullRequestRef) string {
	return RenderKeyValueList(map[string]string{
		"repo":   fmt.Sprintf("%s %s", pr.Repo, Highlight(fmt.Sprintf("#%d", pr.Number))),
		"head":   pr.HeadBranch,
		"base":   pr.BaseBranch,
		"commit": pr.Commit,
	}, []string{"repo", "head", "base", "commit"})
}
