package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"
)

func init() {
	// Force lipgloss to initialize and detect terminal before fuzzy finder starts
	// This prevents ANSI escape sequences from leaking into the finder input
	_ = lipgloss.NewStyle().Render("")
	_ = lipgloss.HasDarkBackground()
}

// SelectToolchain presents a fuzzy finder to pick one of toolchains.
// Returns "" if the user cancelled the selection.
func SelectToolchain(toolchains []string, easyconfigFor func(string) string) string {
	// Flush stdout/stderr before starting fuzzy finder to clear any ANSI sequences
	os.Stdout.Sync()
	os.Stderr.Sync()

	idx, err := fuzzyfinder.Find(
		toolchains,
		func(i int) string {
			return toolchains[i]
		},
		fuzzyfinder.WithPromptString("toolchain> "),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return easyconfigFor(toolchains[i])
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		return ""
	}
	return toolchains[idx]
}
