package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/eessi/ebdev/internal/recipe"
)

// Outcome icons
const (
	IconGenerated = "✓"
	IconSkipped   = "○"
	IconWarning   = "⚠"
)

// Status is a rendered generation status
type Status struct {
	Icon  string
	Label string
	Style lipgloss.Style
}

// GetStatus returns the display status for a generation outcome
func GetStatus(status recipe.Status) Status {
	switch status {
	case recipe.StatusGenerated:
		return Status{Icon: IconGenerated, Label: "generated", Style: SuccessStyle}
	case recipe.StatusCopied:
		return Status{Icon: IconGenerated, Label: "copied", Style: SuccessStyle}
	case recipe.StatusPatchOnly:
		return Status{Icon: IconGenerated, Label: "patch only", Style: SuccessStyle}
	case recipe.StatusAlreadyGenerated:
		return Status{Icon: IconSkipped, Label: "already generated", Style: SkippedStyle}
	case recipe.StatusPatchFailed:
		return Status{Icon: IconWarning, Label: "patch failed", Style: WarningStyle}
	default:
		return Status{Icon: IconWarning, Label: "unknown template", Style: WarningStyle}
	}
}

// Render returns the full status with icon and label (e.g., "✓ generated")
func (s Status) Render() string {
	return s.Style.Render(s.Icon + " " + s.Label)
}

// RenderOutcome renders the status line and message of a generation outcome
func RenderOutcome(o *recipe.Outcome) string {
	status := GetStatus(o.Status)
	line := status.Render() + " " + o.Message
	if o.Path != "" && o.Status.Produced() {
		line += "\n  " + Dim(o.Path)
	}
	return line
}
