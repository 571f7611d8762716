package calendar

import (
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func newTestPicker(t *testing.T, opts ...Option) *Picker {
	t.Helper()
	opts = append([]Option{WithToday(func() civil.Date { return testToday })}, opts...)
	return NewPicker(opts...)
}

func runCmd(t *testing.T, cmd tea.Cmd) SelectMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(SelectMsg)
	require.True(t, ok)
	return msg
}

func TestPickerStartsOnTodaysMonth(t *testing.T) {
	p := newTestPicker(t)
	left, right := p.Months()
	require.Equal(t, Month{2025, time.October}, left)
	require.Equal(t, Month{2025, time.November}, right)
	require.Equal(t, testToday, p.Cursor())
}

func TestPickerWithAnchor(t *testing.T) {
	p := newTestPicker(t, WithAnchor(Month{1, time.January}))
	left, right := p.Months()
	require.Equal(t, Month{1, time.January}, left)
	require.Equal(t, Month{1, time.February}, right)
	require.Equal(t, date(1, time.January, 1), p.Cursor(), "cursor follows an anchor away from today")

	p = newTestPicker(t, WithAnchor(Month{2025, time.September}))
	require.Equal(t, testToday, p.Cursor(), "today stays the cursor while it is on screen")
}

func TestPickerIsControlled(t *testing.T) {
	var calls [][2]civil.Date
	p := newTestPicker(t, WithOnSelect(func(start, end civil.Date) {
		calls = append(calls, [2]civil.Date{start, end})
	}))

	msg := runCmd(t, p.Click(date(2025, time.October, 10)))
	require.Equal(t, Selection{Start: date(2025, time.October, 10)}, msg.Selection)
	require.Len(t, calls, 1, "callback runs synchronously with the click")
	require.Equal(t, Empty, p.Selection().State(), "picker must not apply its own proposal")

	p.SetSelection(msg.Selection)
	msg = runCmd(t, p.Click(date(2025, time.October, 5)))
	require.Equal(t, Selection{Start: date(2025, time.October, 5), End: date(2025, time.October, 10)}, msg.Selection)
	require.Equal(t, [2]civil.Date{date(2025, time.October, 5), date(2025, time.October, 10)}, calls[1])
}

func TestPickerDisabledClick(t *testing.T) {
	called := false
	p := newTestPicker(t, WithOnSelect(func(civil.Date, civil.Date) { called = true }))
	require.Nil(t, p.Click(testToday.AddDays(-2)))
	require.False(t, called)
}

func TestPickerAdvance(t *testing.T) {
	p := newTestPicker(t)
	p.Advance(-1)
	p.Advance(-1)
	require.Equal(t, Month{2025, time.August}, p.Anchor(), "past months stay navigable")
	p.Advance(1)
	p.Advance(0)
	require.Equal(t, Month{2025, time.September}, p.Anchor())
}

func TestPickerKeyboard(t *testing.T) {
	p := newTestPicker(t)
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, date(2025, time.October, 2), p.Cursor())
	require.Equal(t, date(2025, time.October, 2), p.HoverDate())

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, Selection{Start: date(2025, time.October, 2)}, runCmd(t, cmd).Selection)

	for i := 0; i < 9; i++ {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, date(2025, time.December, 4), p.Cursor())
	require.Equal(t, Month{2025, time.November}, p.Anchor(), "anchor follows cursor past the right panel")

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	require.Equal(t, testToday, p.Cursor())
	require.Equal(t, Month{2025, time.October}, p.Anchor())

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	require.Equal(t, Month{2025, time.November}, p.Anchor())
	require.Equal(t, date(2025, time.November, 1), p.Cursor())
}

func TestPickerQuickRange(t *testing.T) {
	p := newTestPicker(t)
	p.SetSelection(Selection{Start: date(2025, time.October, 20)})
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	require.Equal(t, Selection{Start: date(2025, time.October, 20), End: date(2025, time.October, 23)}, runCmd(t, cmd).Selection)
}

func TestPickerSetSelectionClearsHoverWhenComplete(t *testing.T) {
	p := newTestPicker(t)
	p.Hover(date(2025, time.October, 12))
	p.SetSelection(Selection{Start: date(2025, time.October, 10)})
	require.Equal(t, date(2025, time.October, 12), p.HoverDate())
	p.SetSelection(Selection{Start: date(2025, time.October, 10), End: date(2025, time.October, 12)})
	require.Equal(t, civil.Date{}, p.HoverDate())
}

func TestPickerViewLayout(t *testing.T) {
	p := newTestPicker(t)
	p.SetSelection(Selection{Start: date(2025, time.October, 10), End: date(2025, time.October, 13)})
	lines := strings.Split(p.View(), "\n")
	require.Len(t, lines, headerRows+GridSize/7)
	for i, l := range lines {
		require.Equal(t, 2*panelWidth+panelGap, lipgloss.Width(l), "line %d", i)
	}
	view := p.View()
	require.Contains(t, view, "October 2025")
	require.Contains(t, view, "November 2025")
	require.Contains(t, view, "(10)")
	require.Contains(t, view, "(13)")
}

func TestPickerDateAt(t *testing.T) {
	p := newTestPicker(t)
	p.SetOrigin(2, 3)

	d, ok := p.DateAt(2, 3+headerRows)
	require.True(t, ok)
	require.Equal(t, date(2025, time.September, 29), d.Date)
	require.False(t, d.InMonth)

	d, ok = p.DateAt(2+3*cellWidth+1, 3+headerRows+1)
	require.True(t, ok)
	require.Equal(t, date(2025, time.October, 9), d.Date)

	d, ok = p.DateAt(2+panelWidth+panelGap, 3+headerRows)
	require.True(t, ok)
	require.Equal(t, date(2025, time.October, 27), d.Date)

	_, ok = p.DateAt(2+panelWidth+1, 3+headerRows)
	require.False(t, ok, "gap between panels")
	_, ok = p.DateAt(2, 3)
	require.False(t, ok, "title row")
}

func TestPickerMouse(t *testing.T) {
	p := newTestPicker(t)
	row := headerRows + 1
	x := 3*cellWidth + 1

	p, _ = p.Update(tea.MouseMsg{X: x, Y: row, Action: tea.MouseActionMotion})
	require.Equal(t, date(2025, time.October, 9), p.HoverDate())

	p, cmd := p.Update(tea.MouseMsg{X: x, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, Selection{Start: date(2025, time.October, 9)}, runCmd(t, cmd).Selection)

	p, _ = p.Update(tea.MouseMsg{X: 200, Y: 200, Action: tea.MouseActionMotion})
	require.Equal(t, civil.Date{}, p.HoverDate())
}
