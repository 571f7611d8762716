package booking

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/emersion/go-ical"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/staydesk/internal/api"
	"github.com/jask/staydesk/internal/calendar"
)

func testConfirmation(serverTotal string) Confirmation {
	s := SearchState{
		Query:  "lisbon",
		Dates:  calendar.Selection{Start: date(2025, time.October, 10), End: date(2025, time.October, 13)},
		Guests: DefaultGuests(),
	}
	cart := NewCart("h1", s.Dates)
	cart.Add(api.RoomCategory{RoomCategoryID: "r1", RoomTypeName: "Double", BaseRate: decimal.RequireFromString("100")})
	res := api.BookingConfirmation{BookingID: "BK-7", Status: "confirmed"}
	if serverTotal != "" {
		res.TotalPrice = decimal.RequireFromString(serverTotal)
	}
	hotel := api.HotelDetails{HotelName: "Alfama Rooms", AddressLine: "Rua A 1", City: "Lisbon", Country: ""}
	return NewConfirmation(res, hotel, cart, s, validForm())
}

func TestNewConfirmation(t *testing.T) {
	t.Parallel()
	c := testConfirmation("")
	require.Equal(t, "300", c.Total.String())
	require.Equal(t, "Rua A 1, Lisbon", c.Address)
	require.Equal(t, 3, c.Nights())
	require.Equal(t, "United Kingdom", c.Guest.Country)

	c = testConfirmation("310.25")
	require.Equal(t, "310.25", c.Total.String())
}

func TestExportICS(t *testing.T) {
	t.Parallel()
	c := testConfirmation("")
	var buf bytes.Buffer
	stamp := time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, exportICS(&buf, c, stamp))

	cal, err := ics.NewDecoder(strings.NewReader(buf.String())).Decode()
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	ev := events[0]
	require.Equal(t, "BK-7@staydesk", ev.Props.Get(ics.PropUID).Value)
	require.Equal(t, "Stay at Alfama Rooms", ev.Props.Get(ics.PropSummary).Value)
	require.Equal(t, "20251010", ev.Props.Get(ics.PropDateTimeStart).Value)
	require.Equal(t, "20251013", ev.Props.Get(ics.PropDateTimeEnd).Value)
	require.Equal(t, "DATE", ev.Props.Get(ics.PropDateTimeStart).Params.Get(ics.ParamValue))
}

func TestExportICS_Invalid(t *testing.T) {
	t.Parallel()
	c := testConfirmation("")
	c.CheckOut = c.CheckIn
	require.Error(t, ExportICS(&bytes.Buffer{}, c))

	c = testConfirmation("")
	c.BookingID = ""
	require.Error(t, ExportICS(&bytes.Buffer{}, c))
}
