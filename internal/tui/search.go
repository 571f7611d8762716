package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/staydesk/internal/api"
	"github.com/jask/staydesk/internal/booking"
	"github.com/jask/staydesk/internal/calendar"
)

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.SignIn):
		return a, a.toggleAccount()
	case key.Matches(m, a.keys.Next), key.Matches(m, a.keys.Down) && a.searchFocus != focusQuery:
		return a, a.setSearchFocus(a.searchFocus + 1)
	case key.Matches(m, a.keys.Prev), key.Matches(m, a.keys.Up) && a.searchFocus != focusQuery:
		return a, a.setSearchFocus(a.searchFocus - 1)
	case key.Matches(m, a.keys.Dates):
		a.openDates()
		return a, nil
	case key.Matches(m, a.keys.Guests):
		a.openGuests()
		return a, nil
	case key.Matches(m, a.keys.Enter):
		switch a.searchFocus {
		case focusDates:
			a.openDates()
			return a, nil
		case focusGuests:
			a.openGuests()
			return a, nil
		}
		return a, a.runSearch()
	case key.Matches(m, a.keys.Back):
		if a.search.HasResults() {
			a.goTo(viewResults)
		}
		return a, nil
	}
	if a.searchFocus != focusQuery {
		return a, nil
	}
	var cmd tea.Cmd
	a.query, cmd = a.query.Update(m)
	a.search.Query = a.query.Value()
	return a, cmd
}

func (a *App) setSearchFocus(i int) tea.Cmd {
	a.searchFocus = (i + searchFocusCount) % searchFocusCount
	if a.searchFocus == focusQuery {
		return a.query.Focus()
	}
	a.query.Blur()
	return nil
}

func (a *App) runSearch() tea.Cmd {
	a.search.Query = a.query.Value()
	if err := a.search.Validate(); err != nil {
		a.setError(err)
		if a.search.Dates.State() != calendar.CompleteRange && strings.TrimSpace(a.search.Query) != "" {
			a.openDates()
		}
		return nil
	}
	return a.startLoading("Searching hotels...", a.searchCmd(a.search.Params(a.cfg.API.PageSize)))
}

func (a *App) searchCmd(p api.SearchParams) tea.Cmd {
	client, parent, timeout := a.client, a.ctx, a.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		hotels, err := client.SearchHotels(ctx, p)
		return searchDoneMsg{hotels: hotels, err: err}
	}
}

func (a *App) handleSearchDone(m searchDoneMsg) (tea.Model, tea.Cmd) {
	a.loading = ""
	if m.err != nil {
		a.setError(m.err)
		return a, nil
	}
	a.search.Results = booking.RankHotels(a.search.Query, m.hotels)
	a.resultCursor = 0
	a.log.Info("search", zap.String("query", a.search.Query), zap.Int("results", len(m.hotels)))
	if len(a.search.Results) == 0 {
		a.setStatus("No hotels found. Try another destination or dates.")
		return a, nil
	}
	a.setStatus(fmt.Sprintf("%d hotels for %s", len(a.search.Results), booking.FormatRange(a.search.Dates)))
	a.goTo(viewResults)
	return a, nil
}

// ---------------------------------------------------------------------------
// Date picker modal
// ---------------------------------------------------------------------------

func (a *App) openDates() {
	a.picker.SetSelection(a.search.Dates)
	a.picker.Leave()
	a.searchFocus = focusDates
	a.query.Blur()
	a.modal = modalDates
}

func (a *App) handleDatesKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Back) {
		a.picker.Leave()
		a.modal = modalNone
		return a, nil
	}
	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(m)
	return a, cmd
}

// handleSelect applies a selection proposed by the picker. A complete range
// closes the modal.
func (a *App) handleSelect(m calendar.SelectMsg) (tea.Model, tea.Cmd) {
	a.search.Dates = m.Selection
	a.picker.SetSelection(m.Selection)
	switch m.Selection.State() {
	case calendar.CompleteRange:
		n := m.Selection.Nights()
		a.setStatus(fmt.Sprintf("%s · %d %s", booking.FormatRange(m.Selection), n, nightsWord(n)))
		if a.modal == modalDates {
			a.modal = modalNone
			a.searchFocus = focusGuests
		}
	case calendar.PartialRange:
		a.setStatus("Check-in " + a.longDate(m.Selection.Start) + ". Now pick check-out.")
	}
	return a, nil
}

func (a *App) datesModalHeader() string {
	return titleStyle.Render("When are you staying?") + "  " + valueStyle.Render(booking.FormatRange(a.search.Dates))
}

// Lines above the calendar inside the modal: header and a blank line.
const datesModalPickerRow = 2

func (a *App) datesModal() string {
	chips := make([]string, 0, 4)
	for _, n := range []int{1, 2, 3, 7} {
		chips = append(chips, chipStyle.Render(fmt.Sprintf("[%d] %d %s", n, n, nightsWord(n))))
	}
	return a.datesModalHeader() + "\n\n" +
		a.picker.View() + "\n\n" +
		strings.Join(chips, "  ") + "\n" +
		a.help.View(a.picker.KeyMap())
}

// pickerOrigin is the terminal cell where the calendar grid's first line is
// drawn, accounting for the modal border and padding.
func (a *App) pickerOrigin() (int, int) {
	_, x, y := a.modalPlacement(a.datesModal())
	return x + modalStyle.GetBorderLeftSize() + modalStyle.GetPaddingLeft(),
		y + modalStyle.GetBorderTopSize() + modalStyle.GetPaddingTop() + datesModalPickerRow
}

func nightsWord(n int) string {
	if n == 1 {
		return "night"
	}
	return "nights"
}

// ---------------------------------------------------------------------------
// Guests modal
// ---------------------------------------------------------------------------

var guestRows = []struct {
	kind  booking.GuestKind
	label string
	hint  string
}{
	{booking.Adults, "Adults", "ages 18+"},
	{booking.Children, "Children", "ages 0-17"},
	{booking.Rooms, "Rooms", ""},
}

func (a *App) openGuests() {
	a.guestsDraft = a.search.Guests
	a.guestCursor = booking.Adults
	a.searchFocus = focusGuests
	a.query.Blur()
	a.modal = modalGuests
}

func (a *App) handleGuestsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		a.modal = modalNone
	case key.Matches(m, a.keys.Up):
		if a.guestCursor > booking.Adults {
			a.guestCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.guestCursor < booking.Rooms {
			a.guestCursor++
		}
	case key.Matches(m, a.keys.Left):
		a.guestsDraft = a.guestsDraft.Dec(a.guestCursor)
	case key.Matches(m, a.keys.Right):
		a.guestsDraft = a.guestsDraft.Inc(a.guestCursor)
	case key.Matches(m, a.keys.Enter):
		a.search.Guests = a.guestsDraft
		a.modal = modalNone
		a.searchFocus = focusButton
		a.setStatus(a.search.Guests.String())
	}
	return a, nil
}

func (a *App) guestsModal() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Guests") + "\n\n")
	for _, r := range guestRows {
		n := a.guestsDraft.Get(r.kind)
		minus, plus := mutedStyle.Render("-"), mutedStyle.Render("+")
		if a.guestsDraft.CanDec(r.kind) {
			minus = cursorStyle.Render("-")
		}
		if a.guestsDraft.CanInc(r.kind) {
			plus = cursorStyle.Render("+")
		}
		marker, style := "  ", labelStyle
		if r.kind == a.guestCursor {
			marker, style = cursorStyle.Render("> "), focusedLabelStyle
		}
		label := style.Render(padRight(r.label, 10)) + mutedStyle.Render(padRight(r.hint, 11))
		fmt.Fprintf(&b, "%s%s %s %2d %s\n", marker, label, minus, n, plus)
	}
	b.WriteString("\n" + buttonStyle.Render("Apply"))
	return b.String()
}

// ---------------------------------------------------------------------------
// Search view
// ---------------------------------------------------------------------------

func (a *App) searchView() string {
	row := func(i int, label, value string) string {
		marker, style := "  ", labelStyle
		if a.searchFocus == i {
			marker, style = cursorStyle.Render("> "), focusedLabelStyle
		}
		return marker + style.Render(padRight(label, 12)) + value
	}
	button := buttonIdleStyle.Render("Search")
	if a.searchFocus == focusButton {
		button = buttonStyle.Render("Search")
	}
	lines := []string{
		row(focusQuery, "Destination", a.query.View()),
		row(focusDates, "Dates", valueStyle.Render(booking.FormatRange(a.search.Dates))),
		row(focusGuests, "Guests", valueStyle.Render(a.search.Guests.String())),
		"",
		"  " + button,
	}
	form := a.renderSection("Find your stay", strings.Join(lines, "\n"))
	if !a.search.HasResults() {
		return form
	}
	hint := mutedStyle.Render(fmt.Sprintf("  %d results from the last search (esc to view)", len(a.search.Results)))
	return lipgloss.JoinVertical(lipgloss.Left, form, hint)
}
