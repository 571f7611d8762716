package booking

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"

	"github.com/jask/staydesk/internal/calendar"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestSearchState_Validate(t *testing.T) {
	t.Parallel()
	s := NewSearchState(DefaultGuests())
	err := s.Validate()
	require.ErrorIs(t, err, ErrNoQuery)
	require.ErrorIs(t, err, ErrNoDates)
	require.False(t, s.Valid())

	s.Query = "  Lisbon "
	s.Dates = calendar.Selection{Start: date(2025, time.October, 10)}
	err = s.Validate()
	require.NotErrorIs(t, err, ErrNoQuery)
	require.ErrorIs(t, err, ErrNoDates)

	s.Dates.End = date(2025, time.October, 13)
	require.NoError(t, s.Validate())
	require.Equal(t, 3, s.Nights())
}

func TestSearchState_Params(t *testing.T) {
	t.Parallel()
	s := SearchState{
		Query:  " porto ",
		Dates:  calendar.Selection{Start: date(2025, time.October, 5), End: date(2025, time.October, 10)},
		Guests: Guests{Adults: 2, Children: 1, Rooms: 1},
	}
	p := s.Params(25)
	require.Equal(t, "porto", p.Query)
	require.Equal(t, "2025-10-05", p.CheckIn.String())
	require.Equal(t, "2025-10-10", p.CheckOut.String())
	require.Equal(t, 2, p.Adults)
	require.Equal(t, 1, p.Children)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 25, p.PageSize)
}

func TestFormatRange(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Check-in date — Check-out date", FormatRange(calendar.Selection{}))
	require.Equal(t, "Oct 10 — Check-out date", FormatRange(calendar.Selection{Start: date(2025, time.October, 10)}))
	require.Equal(t, "Oct 30 — Nov 2", FormatRange(calendar.Selection{
		Start: date(2025, time.October, 30),
		End:   date(2025, time.November, 2),
	}))
}
