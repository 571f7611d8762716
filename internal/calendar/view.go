package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth  = 4
	panelWidth = 7 * cellWidth
	panelGap   = 4
	headerRows = 2
)

var weekdays = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Styles for the picker. Cell styles must not add padding or borders: the
// mouse hit test assumes fixed four-column cells.
type Styles struct {
	Title    lipgloss.Style
	Weekday  lipgloss.Style
	Day      lipgloss.Style
	Today    lipgloss.Style
	Outside  lipgloss.Style
	Disabled lipgloss.Style
	Endpoint lipgloss.Style
	Range    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b4befe")),
		Weekday:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
		Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")),
		Today:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5c2e7")),
		Outside:  lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#6c7086")),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a")),
		Endpoint: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa")),
		Range:    lipgloss.NewStyle().Background(lipgloss.Color("#313244")),
	}
}

func (s Styles) cell(c Cell, cursor bool) lipgloss.Style {
	st := s.Day
	switch {
	case c.Endpoint:
		st = s.Endpoint
	case c.Disabled:
		st = s.Disabled
	case c.Outside:
		st = s.Outside
	case c.Today:
		st = s.Today
	}
	if c.Shape() == Flat {
		st = st.Inherit(s.Range)
	}
	if cursor {
		st = st.Underline(true)
	}
	return st
}

// cellLabel draws endpoints with round brackets; interior cells keep plain
// padding so adjacent highlights form one band.
func cellLabel(c Cell) string {
	if c.Endpoint {
		return fmt.Sprintf("(%2d)", c.Date.Day)
	}
	return fmt.Sprintf(" %2d ", c.Date.Day)
}

// View renders both months side by side.
func (p *Picker) View() string {
	cells := p.Cells()
	left, right := p.Months()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		p.renderMonth(left, cells[0], "‹ ", ""),
		strings.Repeat(" ", panelGap),
		p.renderMonth(right, cells[1], "", " ›"),
	)
}

func (p *Picker) renderMonth(m Month, cells []Cell, prefix, suffix string) string {
	lines := make([]string, 0, headerRows+GridSize/7)
	title := lipgloss.PlaceHorizontal(panelWidth-2, lipgloss.Center, m.String())
	lines = append(lines, p.styles.Title.Render(prefix+title+suffix))

	var wd strings.Builder
	for _, w := range weekdays {
		wd.WriteString(" " + w + " ")
	}
	lines = append(lines, p.styles.Weekday.Render(wd.String()))

	for row := 0; row < GridSize/7; row++ {
		var b strings.Builder
		for _, c := range cells[row*7 : row*7+7] {
			b.WriteString(p.styles.cell(c, c.Date == p.cursor).Render(cellLabel(c)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
