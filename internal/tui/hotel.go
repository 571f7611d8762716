package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/staydesk/internal/api"
	"github.com/jask/staydesk/internal/booking"
)

func (a *App) handleHotelLoaded(m hotelLoadedMsg) (tea.Model, tea.Cmd) {
	a.loading = ""
	if m.err != nil {
		a.setError(fmt.Errorf("failed to fetch hotel details: %w", m.err))
		return a, nil
	}
	h := m.hotel
	if !a.cart.For(h.HotelID, a.search.Dates) {
		a.cart = booking.NewCart(h.HotelID, a.search.Dates)
		a.batch = nil
	}
	a.hotel = &h
	a.roomCursor = 0
	a.log.Info("hotel opened", zap.String("hotel", h.HotelID), zap.Int("rooms", len(h.Rooms)))
	a.setStatus(fmt.Sprintf("%d room types at %s", len(h.Rooms), h.HotelName))
	a.goTo(viewHotel)
	return a, nil
}

func (a *App) handleHotelKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.hotel == nil {
		a.goTo(viewSearch)
		return a, nil
	}
	rooms := a.hotel.Rooms
	switch {
	case key.Matches(m, a.keys.Back):
		a.leaveHotel()
	case key.Matches(m, a.keys.Up):
		if a.roomCursor > 0 {
			a.roomCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.roomCursor < len(rooms)-1 {
			a.roomCursor++
		}
	case key.Matches(m, a.keys.AddRoom):
		if len(rooms) == 0 {
			return a, nil
		}
		room := rooms[a.roomCursor]
		if avail := room.MinAvailable(); avail >= 0 && a.quantity(room.RoomCategoryID) >= avail {
			a.setError(fmt.Errorf("only %d %s left for these dates", avail, room.RoomTypeName))
			return a, nil
		}
		a.cart.Add(room.RoomCategory)
		a.batch = nil
		a.setStatus(fmt.Sprintf("Added %s · total %s", room.RoomTypeName, a.money(a.cart.Total())))
	case key.Matches(m, a.keys.DropRoom):
		if len(rooms) == 0 {
			return a, nil
		}
		a.cart.Remove(rooms[a.roomCursor].RoomCategoryID)
		a.batch = nil
		a.setStatus("Cart total " + a.money(a.cart.Total()))
	case key.Matches(m, a.keys.Checkout):
		if a.cart.Empty() {
			a.setError(errors.New("reserve at least one room first"))
			return a, nil
		}
		if a.batch == nil {
			a.batch = newCheckoutBatch(a.cart)
		}
		a.goTo(viewCheckout)
		a.prefillCheckout()
		return a, a.checkout.setFocus(a.checkout.focus)
	}
	return a, nil
}

// leaveHotel goes back to the results when there are any, otherwise to the
// search form.
func (a *App) leaveHotel() {
	if a.search.HasResults() {
		a.goTo(viewResults)
		return
	}
	a.goTo(viewSearch)
}

func (a *App) quantity(roomCategoryID string) int {
	for _, it := range a.cart.Items {
		if it.RoomCategoryID == roomCategoryID {
			return it.Quantity
		}
	}
	return 0
}

func (a *App) hotelView() string {
	h := a.hotel
	if h == nil {
		return ""
	}
	var b strings.Builder
	place := strings.Join(nonEmpty(h.AddressLine, h.City, h.Country), ", ")
	b.WriteString(mutedStyle.Render(place) + "\n")
	b.WriteString(ratingStyle.Render(rating(h.AverageRating, h.TotalReviews)) + "\n")
	if h.Summary != nil && *h.Summary != "" {
		b.WriteString("\n" + valueStyle.Render(*h.Summary) + "\n")
	}
	if len(h.Facilities) > 0 {
		b.WriteString("\n" + chipStyle.Render(strings.Join(h.Facilities, " · ")) + "\n")
	}
	head := a.renderSection(h.HotelName, strings.TrimRight(b.String(), "\n"))

	var rooms []string
	for i, r := range h.Rooms {
		rooms = append(rooms, a.renderRoom(r, i == a.roomCursor))
	}
	if len(rooms) == 0 {
		rooms = append(rooms, mutedStyle.Render("No rooms available for these dates."))
	}
	roomTitle := fmt.Sprintf("Available rooms · %s · %d %s", a.shortRange(), a.search.Nights(), nightsWord(a.search.Nights()))
	roomSection := a.renderSection(roomTitle, strings.Join(rooms, "\n"))

	out := []string{head, roomSection}
	if !a.cart.Empty() {
		out = append(out, a.renderSection("Your selection", a.cartView()))
	}
	if len(h.Reviews) > 0 {
		out = append(out, a.renderSection("Guest reviews", a.reviewsView(h.Reviews)))
	}
	return strings.Join(out, "\n")
}

func (a *App) renderRoom(r api.Room, selected bool) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}
	var beds []string
	for _, bd := range r.Beds {
		beds = append(beds, fmt.Sprintf("%dx %s", bd.BedCount, bd.BedTypeName))
	}
	line1 := marker + titleStyle.Render(r.RoomTypeName) + "  " +
		priceStyle.Render(a.money(r.BaseRate)) + mutedStyle.Render(" per night")
	if q := a.quantity(r.RoomCategoryID); q > 0 {
		line1 += "  " + successStyle.Render(fmt.Sprintf("× %d", q))
	}
	detail := []string{fmt.Sprintf("Max guests: %d", r.MaximumGuests)}
	if r.Info != "" {
		detail = append(detail, r.Info)
	}
	if len(beds) > 0 {
		detail = append(detail, strings.Join(beds, ", "))
	}
	if avail := r.MinAvailable(); avail >= 0 {
		detail = append(detail, fmt.Sprintf("%d left", avail))
	}
	lines := []string{line1, "  " + mutedStyle.Render(strings.Join(detail, " · "))}
	if len(r.Facilities) > 0 {
		lines = append(lines, "  "+chipStyle.Render(strings.Join(r.Facilities, " · ")))
	}
	block := strings.Join(lines, "\n")
	if selected {
		block = selectedRowStyle.Render(block)
	}
	return block
}

func (a *App) cartView() string {
	var lines []string
	for _, it := range a.cart.Items {
		lines = append(lines, fmt.Sprintf("%d × %s  %s × %d %s  %s",
			it.Quantity, it.RoomType, a.money(it.Rate), it.Nights, nightsWord(it.Nights),
			priceStyle.Render(a.money(it.Subtotal()))))
	}
	lines = append(lines, titleStyle.Render("Total ")+priceStyle.Render(a.money(a.cart.Total())))
	return strings.Join(lines, "\n")
}

func (a *App) reviewsView(reviews []api.Review) string {
	const shown = 5
	var lines []string
	for i, r := range reviews {
		if i == shown {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("and %d more", len(reviews)-shown)))
			break
		}
		when := r.CreatedAt
		if len(when) >= 10 {
			when = when[:10]
		}
		lines = append(lines, ratingStyle.Render(stars(r.Rating))+" "+mutedStyle.Render(when))
		if r.Comment != "" {
			lines = append(lines, "  "+valueStyle.Render(truncate(r.Comment, max(a.width-10, 40))))
		}
	}
	return strings.Join(lines, "\n")
}
