// Package calendar implements the two-month date-range picker used by the
// search form.
//
// Dates are civil.Date values (year, month, day) and never instants, so grid
// generation and comparisons are unaffected by the process time zone. The
// picker is controlled: the embedding view owns the Selection, hands it to the
// picker with SetSelection and receives proposed changes through OnSelect or
// SelectMsg.
package calendar
