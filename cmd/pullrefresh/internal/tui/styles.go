package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/pullrefresh/pkg/graphics"
)

var (
	colorAccent  = hexColor(graphics.RGB(0x7d, 0x56, 0xf4))
	colorDim     = hexColor(graphics.RGB(0x62, 0x62, 0x62))
	colorHeader  = hexColor(graphics.RGB(0x1f, 0x1d, 0x2e))
	colorRowEven = hexColor(graphics.RGB(0x24, 0x24, 0x24))
	colorArmed   = hexColor(graphics.RGB(0x04, 0xb5, 0x75))
)

var (
	headerStyle = lipgloss.NewStyle().Background(colorHeader)
	armedStyle  = lipgloss.NewStyle().Background(colorHeader).Foreground(colorArmed).Bold(true)
	rowStyle    = lipgloss.NewStyle()
	rowAltStyle = lipgloss.NewStyle().Background(colorRowEven)
	labelStyle  = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	statusStyle = lipgloss.NewStyle().Foreground(colorDim)
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func hexColor(c graphics.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
