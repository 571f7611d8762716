package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/jask/staydesk/internal/api"
)

func (a *App) handleResultsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.SignIn):
		return a, a.toggleAccount()
	case key.Matches(m, a.keys.Up):
		if a.resultCursor > 0 {
			a.resultCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.resultCursor < len(a.search.Results)-1 {
			a.resultCursor++
		}
	case key.Matches(m, a.keys.Back):
		a.goTo(viewSearch)
		a.searchFocus = focusQuery
		return a, a.query.Focus()
	case key.Matches(m, a.keys.Enter):
		if len(a.search.Results) == 0 {
			return a, nil
		}
		h := a.search.Results[a.resultCursor]
		return a, a.startLoading("Loading "+h.HotelName+"...", a.hotelCmd(h.HotelID))
	}
	return a, nil
}

func (a *App) hotelCmd(id string) tea.Cmd {
	client, parent, timeout := a.client, a.ctx, a.cfg.API.Timeout
	in, out, guests := a.search.CheckIn(), a.search.CheckOut(), a.search.Guests.Total()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		h, err := client.HotelDetails(ctx, id, in, out, guests)
		return hotelLoadedMsg{hotel: h, err: err}
	}
}

func (a *App) resultsView() string {
	if len(a.search.Results) == 0 {
		return a.renderSection("Results", mutedStyle.Render("No hotels found."))
	}
	var blocks []string
	for i, h := range a.search.Results {
		blocks = append(blocks, a.renderHotelCard(h, i == a.resultCursor))
	}
	title := fmt.Sprintf("%d stays · %s · %s", len(a.search.Results), a.shortRange(), a.search.Guests)
	return a.renderSection(title, strings.Join(blocks, "\n"))
}

func (a *App) renderHotelCard(h api.Hotel, selected bool) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("> ")
	}
	place := strings.Join(nonEmpty(h.City, h.Country), ", ")
	line1 := marker + titleStyle.Render(h.HotelName) + "  " + mutedStyle.Render(place)
	parts := []string{ratingStyle.Render(rating(h.AverageRating, h.TotalReviews))}
	if from, ok := h.FromPrice(); ok {
		parts = append(parts, "from "+priceStyle.Render(a.money(from))+mutedStyle.Render(" / night"))
	}
	line2 := "  " + strings.Join(parts, "   ")
	lines := []string{line1, line2}
	if h.Summary != nil && *h.Summary != "" {
		lines = append(lines, "  "+mutedStyle.Render(truncate(*h.Summary, max(a.width-10, 40))))
	}
	block := strings.Join(lines, "\n")
	if selected {
		block = selectedRowStyle.Render(block)
	}
	return block + "\n"
}

func rating(avg float64, reviews int) string {
	if reviews == 0 {
		return "no reviews yet"
	}
	return fmt.Sprintf("★ %.1f (%d reviews)", avg, reviews)
}

// stars renders a ten-point score as five half-step stars.
func stars(score float64) string {
	halves := int(score + 0.5)
	halves = min(max(halves, 0), 10)
	return strings.Repeat("★", halves/2) + strings.Repeat("½", halves%2) + strings.Repeat("☆", 5-halves/2-halves%2)
}

func (a *App) money(d decimal.Decimal) string {
	return a.cfg.UI.CurrencySymbol + d.StringFixed(2)
}

func (a *App) longDate(d civil.Date) string {
	if d == (civil.Date{}) {
		return "-"
	}
	return d.In(time.UTC).Format(a.cfg.UI.DateFormat)
}

func (a *App) shortRange() string {
	return a.longDate(a.search.CheckIn()) + " → " + a.longDate(a.search.CheckOut())
}

func nonEmpty(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
