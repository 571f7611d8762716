package calendar

import (
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

// GridSize is the number of cells in a month grid: six Monday-first weeks.
const GridSize = 6 * 7

// Day is one cell of a month grid.
type Day struct {
	Date    civil.Date
	InMonth bool
}

// Month identifies a displayed calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d.
func MonthOf(d civil.Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

// First returns the first day of the month.
func (m Month) First() civil.Date {
	return civil.Date{Year: m.Year, Month: m.Month, Day: 1}
}

// Add returns the month n months away from m.
func (m Month) Add(n int) Month {
	idx := m.Year*12 + int(m.Month-1) + n
	year, month := idx/12, idx%12
	if month < 0 {
		month += 12
		year--
	}
	return Month{Year: year, Month: time.Month(month + 1)}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.Add(1).First().AddDays(-1).Day
}

// Contains reports whether d falls in the month.
func (m Month) Contains(d civil.Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

func (m Month) String() string {
	return m.Month.String() + " " + strconv.Itoa(m.Year)
}

// GenerateDays returns the 42-cell grid for m: the trailing days of the
// previous month up to the first Monday, every day of m, then leading days of
// the next month.
func GenerateDays(m Month) []Day {
	first := m.First()
	start := first.AddDays(-mondayIndex(first))
	days := make([]Day, GridSize)
	for i := range days {
		d := start.AddDays(i)
		days[i] = Day{Date: d, InMonth: m.Contains(d)}
	}
	return days
}

// mondayIndex maps Monday..Sunday to 0..6. The UTC instant only carries the
// calendar fields; no zone conversion happens.
func mondayIndex(d civil.Date) int {
	wd := d.In(time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// AddMonths moves d by n months, clamping the day to the target month length.
func AddMonths(d civil.Date, n int) civil.Date {
	m := MonthOf(d).Add(n)
	day := d.Day
	if last := m.Days(); day > last {
		day = last
	}
	return civil.Date{Year: m.Year, Month: m.Month, Day: day}
}
