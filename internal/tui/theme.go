package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/staydesk/internal/calendar"
)

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorBrand   = colorPink
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorPrice   = colorPeach
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Background(colorMantle).
			Bold(true)

	headerUserStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	errorStatusStyle = statusBarStyle.Foreground(colorError)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtext0)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	valueStyle        = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle        = lipgloss.NewStyle().Foreground(colorOverlay1)
	cursorStyle       = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	selectedRowStyle  = lipgloss.NewStyle().Background(colorSurface0)
	priceStyle        = lipgloss.NewStyle().Foreground(colorPrice).Bold(true)
	ratingStyle       = lipgloss.NewStyle().Foreground(colorWarning)
	chipStyle         = lipgloss.NewStyle().Foreground(colorTeal)
	successStyle      = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	buttonStyle       = lipgloss.NewStyle().Foreground(colorBase).Background(colorBlue).Padding(0, 2)
	buttonIdleStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 2)
)

// pickerStyles maps the palette onto the calendar cells.
func pickerStyles() calendar.Styles {
	return calendar.Styles{
		Title:    lipgloss.NewStyle().Foreground(colorLavender).Bold(true),
		Weekday:  lipgloss.NewStyle().Foreground(colorSubtext0),
		Day:      lipgloss.NewStyle().Foreground(colorText),
		Today:    lipgloss.NewStyle().Foreground(colorBrand).Bold(true),
		Outside:  lipgloss.NewStyle().Foreground(colorOverlay0),
		Disabled: lipgloss.NewStyle().Foreground(colorSurface1).Strikethrough(true),
		Endpoint: lipgloss.NewStyle().Foreground(colorBase).Background(colorBlue).Bold(true),
		Range:    lipgloss.NewStyle().Background(colorSurface0),
	}
}
