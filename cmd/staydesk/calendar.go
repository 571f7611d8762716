package main

import (
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/jask/staydesk/internal/calendar"
)

func newCalendarCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Print two months of the date picker",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := c.cfg.Location()
			if err != nil {
				return err
			}
			today := calendar.TodayIn(loc)
			month := calendar.MonthOf(today())
			if len(args) == 1 {
				if month, err = parseMonth(args[0]); err != nil {
					return err
				}
			}
			return printCalendar(cmd.OutOrStdout(), month, today)
		},
	}
}

func parseMonth(s string) (calendar.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return calendar.Month{}, fmt.Errorf("month %q: want YYYY-MM", s)
	}
	return calendar.Month{Year: t.Year(), Month: t.Month()}, nil
}

// printCalendar renders the picker anchored on m without a selection.
func printCalendar(w io.Writer, m calendar.Month, today func() civil.Date) error {
	p := calendar.NewPicker(calendar.WithToday(today), calendar.WithAnchor(m))
	_, err := fmt.Fprintln(w, p.View())
	return err
}
