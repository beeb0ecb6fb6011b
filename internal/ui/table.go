package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/eessi/ebdev/internal/recipe"
)

// NewTable creates a new table with the default styling.
// This is a thin wrapper around lipgloss/table with opinionated defaults
func NewTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		BorderRow(false).
		BorderColumn(true).
		Width(min(GetTerminalWidth(), 120)).
		StyleFunc(defaultTableStyleFunc)
}

// defaultTableStyleFunc provides default styling for table cells
func defaultTableStyleFunc(row, col int) lipgloss.Style {
	switch {
	case row == table.HeaderRow:
		return TableHeaderStyle
	case row%2 == 0:
		return TableCellStyle
	default:
		return TableRowAltStyle
	}
}

// RenderPlaceholderTable lists placeholder easyconfigs by their name parts
func RenderPlaceholderTable(placeholders []recipe.Placeholder) string {
	if len(placeholders) == 0 {
		return Dim("No placeholder easyconfigs found")
	}

	t := NewTable().Headers("COMPONENT", "VERSION", "TOOLCHAIN", "SUFFIX", "FILE")
	for _, ph := range placeholders {
		t.Row(ph.Name.Component, ph.Name.Version, ph.Name.Toolchain, ph.Name.Suffix, ph.Name.String())
	}
	return t.String()
}
