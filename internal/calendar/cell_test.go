package calendar

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"
)

func TestCellStateCompleteRange(t *testing.T) {
	sel := Selection{Start: date(2025, time.October, 10), End: date(2025, time.October, 13)}

	start := CellState(sel.Start, true, sel, civil.Date{}, testToday)
	require.True(t, start.Endpoint)
	require.False(t, start.InRange)
	require.Equal(t, Rounded, start.Shape())

	mid := CellState(date(2025, time.October, 11), true, sel, civil.Date{}, testToday)
	require.True(t, mid.InRange)
	require.False(t, mid.Endpoint)
	require.Equal(t, Flat, mid.Shape())

	end := CellState(sel.End, true, sel, civil.Date{}, testToday)
	require.True(t, end.Endpoint)
	require.Equal(t, Rounded, end.Shape())

	after := CellState(date(2025, time.October, 14), true, sel, civil.Date{}, testToday)
	require.False(t, after.InRange)
}

func TestCellStateHoverPreview(t *testing.T) {
	sel := Selection{Start: date(2025, time.October, 10)}
	hover := date(2025, time.October, 12)

	require.True(t, CellState(date(2025, time.October, 11), true, sel, hover, testToday).InRange)
	require.True(t, CellState(hover, true, sel, hover, testToday).InRange)
	require.False(t, CellState(date(2025, time.October, 13), true, sel, hover, testToday).InRange)
	require.False(t, CellState(sel.Start, true, sel, hover, testToday).InRange)

	back := date(2025, time.October, 7)
	require.True(t, CellState(date(2025, time.October, 8), true, sel, back, testToday).InRange)
	require.True(t, CellState(back, true, sel, back, testToday).InRange)
	require.False(t, CellState(date(2025, time.October, 6), true, sel, back, testToday).InRange)

	// Hover has no effect once the range is complete.
	full := Selection{Start: sel.Start, End: date(2025, time.October, 11)}
	require.False(t, CellState(hover, true, full, hover, testToday).InRange)
}

func TestCellStateFlags(t *testing.T) {
	past := CellState(testToday.AddDays(-1), true, Selection{}, civil.Date{}, testToday)
	require.True(t, past.Disabled)
	require.False(t, past.Clickable())

	today := CellState(testToday, true, Selection{}, civil.Date{}, testToday)
	require.True(t, today.Today)
	require.True(t, today.Clickable())

	selectedToday := CellState(testToday, true, Selection{Start: testToday}, civil.Date{}, testToday)
	require.False(t, selectedToday.Today)
	require.True(t, selectedToday.Endpoint)

	outside := CellState(date(2025, time.November, 2), false, Selection{}, civil.Date{}, testToday)
	require.True(t, outside.Outside)
	require.True(t, outside.Clickable())
}
