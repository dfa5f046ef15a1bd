package main

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerFGColor  = "#c0c0c0"
	rowTextFGColor = "#e0e0e0"
	errorFGColor   = "1"
	faintFGColor   = "240"
)

var (
	rawHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(headerFGColor)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(faintFGColor)).
			BorderBottom(true).
			Padding(0, 1)
	rawCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor)).Padding(0, 1)
	endStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(errorFGColor))
)

// rawTableStyles renders the raw data page without a selected row.
func rawTableStyles() table.Styles {
	return table.Styles{
		Header:   rawHeaderStyle,
		Cell:     rawCellStyle,
		Selected: lipgloss.NewStyle(),
	}
}
