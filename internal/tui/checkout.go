package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jask/staydesk/internal/api"
	"github.com/jask/staydesk/internal/booking"
)

func (a *App) prefillCheckout() {
	if a.user == nil {
		return
	}
	if a.checkout.value(coEmail) == "" {
		a.checkout.setValue(coEmail, a.user.Email)
	}
	if a.checkout.value(coFirstName) == "" && a.user.Name != "" {
		first, last, _ := strings.Cut(a.user.Name, " ")
		a.checkout.setValue(coFirstName, first)
		a.checkout.setValue(coLastName, last)
	}
}

func (a *App) checkoutForm() booking.CheckoutForm {
	f := a.checkout
	return booking.CheckoutForm{
		FirstName:       f.value(coFirstName),
		LastName:        f.value(coLastName),
		Email:           f.value(coEmail),
		Address:         f.value(coAddress),
		City:            f.value(coCity),
		ZipCode:         f.value(coZip),
		Country:         f.value(coCountry),
		Phone:           f.value(coPhone),
		SpecialRequests: f.value(coRequests),
	}
}

func (a *App) handleCheckoutKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		if a.batch != nil && a.batch.partial() {
			a.setError(errors.New("some rooms are already booked, press ctrl+s to book the rest"))
			return a, nil
		}
		a.goTo(viewHotel)
		return a, nil
	case key.Matches(m, a.keys.Next), m.String() == "down":
		return a, a.checkout.next()
	case key.Matches(m, a.keys.Prev), m.String() == "up":
		return a, a.checkout.prev()
	case key.Matches(m, a.keys.Submit), key.Matches(m, a.keys.Enter) && a.checkout.last():
		return a, a.submitBooking()
	case key.Matches(m, a.keys.Enter):
		return a, a.checkout.next()
	}
	return a, a.checkout.update(m)
}

func (a *App) submitBooking() tea.Cmd {
	if a.loading != "" {
		return nil
	}
	form := a.checkoutForm()
	if err := form.Validate(); err != nil {
		a.setError(errors.New(strings.ReplaceAll(err.Error(), "\n", "; ")))
		return nil
	}
	if a.batch == nil {
		a.batch = newCheckoutBatch(a.cart)
	}
	reqs := a.bookingRequests(form)
	return a.startLoading("Booking your stay...", a.bookCmd(reqs))
}

// checkoutBatch pins one idempotency key per cart line for the life of a
// checkout and remembers the lines the backend already confirmed. A retry
// after a partial failure sends only the missing lines, under the same keys.
type checkoutBatch struct {
	keys      map[string]string
	confirmed map[string]api.BookingConfirmation
}

func newCheckoutBatch(cart booking.Cart) *checkoutBatch {
	b := &checkoutBatch{
		keys:      make(map[string]string, len(cart.Items)),
		confirmed: make(map[string]api.BookingConfirmation),
	}
	for _, it := range cart.Items {
		b.keys[it.RoomCategoryID] = uuid.NewString()
	}
	return b
}

// partial reports whether some but not all lines are booked.
func (b *checkoutBatch) partial() bool {
	return len(b.confirmed) > 0 && len(b.confirmed) < len(b.keys)
}

// combined folds the per-line confirmations into one, in cart order: ids
// joined with "," and totals summed.
func (b *checkoutBatch) combined(cart booking.Cart) api.BookingConfirmation {
	var out api.BookingConfirmation
	ids := make([]string, 0, len(cart.Items))
	total := decimal.Zero
	for _, it := range cart.Items {
		conf, ok := b.confirmed[it.RoomCategoryID]
		if !ok {
			continue
		}
		ids = append(ids, conf.BookingID)
		total = total.Add(conf.TotalPrice)
		out.Status = conf.Status
	}
	out.BookingID = strings.Join(ids, ",")
	out.TotalPrice = total
	return out
}

// bookingRequests builds a request for every cart line not yet confirmed.
func (a *App) bookingRequests(form booking.CheckoutForm) []api.BookingRequest {
	guest := form.Guest()
	reqs := make([]api.BookingRequest, 0, len(a.cart.Items))
	for _, it := range a.cart.Items {
		if _, done := a.batch.confirmed[it.RoomCategoryID]; done {
			continue
		}
		reqs = append(reqs, api.BookingRequest{
			IdempotencyKey:  a.batch.keys[it.RoomCategoryID],
			HotelID:         a.hotel.HotelID,
			RoomCategoryID:  it.RoomCategoryID,
			Quantity:        it.Quantity,
			CheckIn:         a.search.CheckIn(),
			CheckOut:        a.search.CheckOut(),
			Adults:          a.search.Guests.Adults,
			Children:        a.search.Guests.Children,
			Guest:           guest,
			SpecialRequests: form.SpecialRequests,
		})
	}
	return reqs
}

type bookedLine struct {
	roomCategoryID string
	conf           api.BookingConfirmation
}

// bookCmd sends reqs in order and stops at the first failure. Lines booked
// before it are still reported.
func (a *App) bookCmd(reqs []api.BookingRequest) tea.Cmd {
	client, parent, timeout := a.client, a.ctx, a.cfg.API.Timeout
	return func() tea.Msg {
		var msg bookingDoneMsg
		for _, r := range reqs {
			ctx, cancel := context.WithTimeout(parent, timeout)
			conf, err := client.CreateBooking(ctx, r)
			cancel()
			if err != nil {
				msg.err = err
				return msg
			}
			msg.booked = append(msg.booked, bookedLine{roomCategoryID: r.RoomCategoryID, conf: conf})
		}
		return msg
	}
}

func (a *App) handleBookingDone(m bookingDoneMsg) (tea.Model, tea.Cmd) {
	a.loading = ""
	if a.batch == nil {
		return a, nil
	}
	for _, b := range m.booked {
		a.batch.confirmed[b.roomCategoryID] = b.conf
		a.log.Info("room booked", zap.String("room", b.roomCategoryID), zap.String("booking", b.conf.BookingID))
	}
	if m.err != nil {
		if n := len(a.batch.confirmed); n > 0 {
			a.setError(fmt.Errorf("%d of %d room types booked, submit again to finish: %w", n, len(a.batch.keys), m.err))
			return a, nil
		}
		a.setError(m.err)
		return a, nil
	}
	c := booking.NewConfirmation(a.batch.combined(a.cart), *a.hotel, a.cart, a.search, a.checkoutForm())
	a.confirmation = &c
	a.log.Info("booked", zap.String("booking", c.BookingID), zap.String("total", c.Total.String()))
	a.setStatus("Booking confirmed")
	a.goTo(viewConfirmation)
	return a, nil
}

func (a *App) checkoutView() string {
	h := a.hotel
	var summary []string
	if h != nil {
		summary = append(summary, titleStyle.Render(h.HotelName))
	}
	summary = append(summary,
		labelStyle.Render("Check-in  ")+valueStyle.Render(a.longDate(a.search.CheckIn())+" from "+booking.CheckInTime),
		labelStyle.Render("Check-out ")+valueStyle.Render(a.longDate(a.search.CheckOut())+" until "+booking.CheckOutTime),
		labelStyle.Render("Guests    ")+valueStyle.Render(a.search.Guests.String()),
		"",
		a.cartView(),
	)
	form := a.renderSection("Almost done! Fill in the * required info", a.checkout.view())
	return form + "\n" + a.renderSection("Booking summary", strings.Join(summary, "\n"))
}

// ---------------------------------------------------------------------------
// Confirmation
// ---------------------------------------------------------------------------

func (a *App) handleConfirmationKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Export):
		if a.confirmation == nil {
			return a, nil
		}
		return a, a.startLoading("Exporting...", exportCmd(*a.confirmation))
	case key.Matches(m, a.keys.Enter), key.Matches(m, a.keys.Back):
		a.resetBooking()
		a.goTo(viewSearch)
		a.searchFocus = focusQuery
		return a, a.query.Focus()
	}
	return a, nil
}

func (a *App) resetBooking() {
	a.cart = booking.Cart{}
	a.batch = nil
	a.hotel = nil
	a.confirmation = nil
	a.checkout.reset()
	a.setStatus("Where to next?")
}

func exportCmd(c booking.Confirmation) tea.Cmd {
	return func() tea.Msg {
		name := "staydesk-" + strings.ReplaceAll(c.BookingID, ",", "_") + ".ics"
		path, err := filepath.Abs(name)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: fmt.Errorf("create %s: %w", name, err)}
		}
		if err := booking.ExportICS(f, c); err != nil {
			_ = f.Close()
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path, err: f.Close()}
	}
}

func (a *App) confirmationView() string {
	c := a.confirmation
	if c == nil {
		return ""
	}
	var lines []string
	lines = append(lines,
		successStyle.Render("✓ Booking confirmed"),
		"Thank you, "+c.Guest.FirstName+". A confirmation was sent to "+c.Guest.Email+".",
		"",
		labelStyle.Render("Booking ID ")+valueStyle.Render(c.BookingID),
		labelStyle.Render("Hotel      ")+valueStyle.Render(c.HotelName),
	)
	if c.Address != "" {
		lines = append(lines, labelStyle.Render("Address    ")+valueStyle.Render(c.Address))
	}
	lines = append(lines,
		labelStyle.Render("Check-in   ")+valueStyle.Render(a.longDate(c.CheckIn)),
		labelStyle.Render("Check-out  ")+valueStyle.Render(a.longDate(c.CheckOut)),
		labelStyle.Render("Guests     ")+valueStyle.Render(fmt.Sprintf("%d guests", c.Guests.Total())),
		"",
	)
	for _, r := range c.Rooms {
		lines = append(lines, fmt.Sprintf("%d × %s", r.Quantity, r.RoomType))
	}
	if c.SpecialRequests != "" {
		lines = append(lines, "", labelStyle.Render("Special requests ")+valueStyle.Render(c.SpecialRequests))
	}
	lines = append(lines, "", titleStyle.Render("Total paid ")+priceStyle.Render(a.money(c.Total)))
	return a.renderSection("Confirmation", strings.Join(lines, "\n"))
}
