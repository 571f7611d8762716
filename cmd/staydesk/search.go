package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/staydesk/internal/api"
	"github.com/jask/staydesk/internal/booking"
	"github.com/jask/staydesk/internal/calendar"
)

type searchFlags struct {
	from     string
	to       string
	adults   int
	children int
	rooms    int
}

func newSearchCmd(c *cli) *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Run one hotel search and print the ranked results",
		Example: `  staydesk search lisbon --from 2025-10-10 --to 2025-10-13
  staydesk search "porto ribeira" --from 2025-11-01 --to 2025-11-03 --adults 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("adults") {
				f.adults = c.cfg.Search.Adults
			}
			if !cmd.Flags().Changed("children") {
				f.children = c.cfg.Search.Children
			}
			if !cmd.Flags().Changed("rooms") {
				f.rooms = c.cfg.Search.Rooms
			}
			state, err := f.state(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), c.client(), state, c.cfg.API.PageSize, c.cfg.UI.CurrencySymbol)
		},
	}
	cmd.Flags().StringVar(&f.from, "from", "", "check-in date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.to, "to", "", "check-out date, YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&f.adults, "adults", 2, "adults, 1-30")
	cmd.Flags().IntVar(&f.children, "children", 0, "children, 0-10")
	cmd.Flags().IntVar(&f.rooms, "rooms", 1, "rooms, 1-30")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// state turns the flags into a search form. The dates go through the same
// selection rules as the picker, so a reversed range is reordered.
func (f searchFlags) state(query string) (booking.SearchState, error) {
	from, err := civil.ParseDate(f.from)
	if err != nil {
		return booking.SearchState{}, fmt.Errorf("--from: %w", err)
	}
	to, err := civil.ParseDate(f.to)
	if err != nil {
		return booking.SearchState{}, fmt.Errorf("--to: %w", err)
	}
	if from == to {
		return booking.SearchState{}, errors.New("check-out must be after check-in")
	}
	s := booking.NewSearchState(booking.NewGuests(f.adults, f.children, f.rooms))
	s.Query = query
	s.Dates = calendar.NewSelection(&from, &to)
	if err := s.Validate(); err != nil {
		return booking.SearchState{}, err
	}
	return s, nil
}

func runSearch(ctx context.Context, w io.Writer, client *api.Client, s booking.SearchState, pageSize int, currency string) error {
	hotels, err := client.SearchHotels(ctx, s.Params(pageSize))
	if err != nil {
		return err
	}
	hotels = booking.RankHotels(s.Query, hotels)
	fmt.Fprintf(w, "%s · %s · %d %s\n", booking.FormatRange(s.Dates), s.Guests, s.Nights(), plural(s.Nights(), "night", "nights"))
	if len(hotels) == 0 {
		fmt.Fprintln(w, "No hotels found.")
		return nil
	}
	fmt.Fprintln(w, resultsTable(hotels, currency))
	return nil
}

func resultsTable(hotels []api.Hotel, currency string) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("HOTEL", "CITY", "RATING", "FROM / NIGHT").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, h := range hotels {
		rating := "-"
		if h.TotalReviews > 0 {
			rating = fmt.Sprintf("%.1f (%d)", h.AverageRating, h.TotalReviews)
		}
		price := "-"
		if from, ok := h.FromPrice(); ok {
			price = currency + from.StringFixed(2)
		}
		t.Row(h.HotelName, h.City, rating, price)
	}
	return t.Render()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
