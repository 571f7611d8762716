package booking

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/jask/staydesk/internal/api"
	"github.com/jask/staydesk/internal/calendar"
)

var (
	ErrNoQuery = errors.New("enter a destination or hotel name")
	ErrNoDates = errors.New("select check-in and check-out dates")
)

// SearchState is everything the search form collects plus the last results.
// The calendar selection lives here; the picker only proposes changes.
type SearchState struct {
	Query   string
	Dates   calendar.Selection
	Guests  Guests
	Results []api.Hotel
}

func NewSearchState(g Guests) SearchState {
	return SearchState{Guests: g}
}

func (s SearchState) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Query) == "" {
		errs = append(errs, ErrNoQuery)
	}
	if s.Dates.State() != calendar.CompleteRange {
		errs = append(errs, ErrNoDates)
	}
	return errors.Join(errs...)
}

func (s SearchState) Valid() bool { return s.Validate() == nil }

func (s SearchState) CheckIn() civil.Date  { return s.Dates.Start }
func (s SearchState) CheckOut() civil.Date { return s.Dates.End }
func (s SearchState) Nights() int          { return s.Dates.Nights() }

// Params converts the form into a first-page search request.
func (s SearchState) Params(pageSize int) api.SearchParams {
	return api.SearchParams{
		Query:    strings.TrimSpace(s.Query),
		CheckIn:  s.Dates.Start,
		CheckOut: s.Dates.End,
		Adults:   s.Guests.Adults,
		Children: s.Guests.Children,
		Page:     1,
		PageSize: pageSize,
	}
}

// HasResults decides where "back" from a hotel goes.
func (s SearchState) HasResults() bool { return len(s.Results) > 0 }

// FormatRange renders the selection the way the search bar shows it, with
// placeholders for missing endpoints.
func FormatRange(sel calendar.Selection) string {
	const (
		in  = "Check-in date"
		out = "Check-out date"
	)
	switch {
	case sel.HasStart() && sel.HasEnd():
		return shortDate(sel.Start) + " — " + shortDate(sel.End)
	case sel.HasStart():
		return shortDate(sel.Start) + " — " + out
	default:
		return in + " — " + out
	}
}

func shortDate(d civil.Date) string {
	return fmt.Sprintf("%s %d", d.Month.String()[:3], d.Day)
}
