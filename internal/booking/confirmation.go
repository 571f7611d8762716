package booking

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	ics "github.com/emersion/go-ical"
	"github.com/shopspring/decimal"

	"github.com/jask/staydesk/internal/api"
)

const (
	CheckInTime  = "15:00"
	CheckOutTime = "11:00"
)

// Confirmation is what the confirmation screen shows after a successful
// booking.
type Confirmation struct {
	BookingID       string
	Status          string
	HotelName       string
	Address         string
	Rooms           []LineItem
	CheckIn         civil.Date
	CheckOut        civil.Date
	Guests          Guests
	Guest           api.GuestDetails
	SpecialRequests string
	Total           decimal.Decimal
}

// NewConfirmation merges the backend reply with what was booked. The
// server's total wins when it sent one.
func NewConfirmation(res api.BookingConfirmation, hotel api.HotelDetails, cart Cart, s SearchState, form CheckoutForm) Confirmation {
	total := cart.Total()
	if !res.TotalPrice.IsZero() {
		total = res.TotalPrice
	}
	return Confirmation{
		BookingID:       res.BookingID,
		Status:          res.Status,
		HotelName:       hotel.HotelName,
		Address:         joinNonEmpty(", ", hotel.AddressLine, hotel.City, hotel.Country),
		Rooms:           append([]LineItem(nil), cart.Items...),
		CheckIn:         s.CheckIn(),
		CheckOut:        s.CheckOut(),
		Guests:          s.Guests,
		Guest:           form.Guest(),
		SpecialRequests: strings.TrimSpace(form.SpecialRequests),
		Total:           total,
	}
}

func (c Confirmation) Nights() int { return c.CheckOut.DaysSince(c.CheckIn) }

func (c Confirmation) summary() string {
	return fmt.Sprintf("Stay at %s", c.HotelName)
}

func (c Confirmation) description() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Booking %s\n", c.BookingID)
	for _, r := range c.Rooms {
		fmt.Fprintf(&b, "%d x %s\n", r.Quantity, r.RoomType)
	}
	fmt.Fprintf(&b, "Guests: %s\n", c.Guests)
	fmt.Fprintf(&b, "Check-in from %s, check-out by %s\n", CheckInTime, CheckOutTime)
	fmt.Fprintf(&b, "Total: %s", c.Total.StringFixed(2))
	return b.String()
}

// ExportICS writes the stay as a single all-day event. DTEND is exclusive,
// so it carries the check-out date itself.
func ExportICS(w io.Writer, c Confirmation) error {
	return exportICS(w, c, time.Now())
}

func exportICS(w io.Writer, c Confirmation, stamp time.Time) error {
	if c.BookingID == "" {
		return fmt.Errorf("export ics: booking id required")
	}
	if !c.CheckIn.Before(c.CheckOut) {
		return fmt.Errorf("export ics: check-out %s is not after check-in %s", c.CheckOut, c.CheckIn)
	}

	cal := ics.NewCalendar()
	cal.Props.SetText(ics.PropVersion, "2.0")
	cal.Props.SetText(ics.PropProductID, "-//staydesk//staydesk//EN")

	event := ics.NewComponent(ics.CompEvent)
	event.Props.SetText(ics.PropUID, c.BookingID+"@staydesk")
	event.Props.SetDateTime(ics.PropDateTimeStamp, stamp.UTC())
	event.Props.SetText(ics.PropSummary, c.summary())
	event.Props.SetText(ics.PropDescription, c.description())
	if c.Address != "" {
		event.Props.SetText(ics.PropLocation, c.Address)
	}
	event.Props.SetDate(ics.PropDateTimeStart, c.CheckIn.In(time.UTC))
	event.Props.SetDate(ics.PropDateTimeEnd, c.CheckOut.In(time.UTC))
	cal.Children = append(cal.Children, event)

	if err := ics.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode ics: %w", err)
	}
	return nil
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
