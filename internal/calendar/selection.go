package calendar

import "cloud.google.com/go/civil"

// State is the phase of a range selection.
type State int

const (
	Empty State = iota
	PartialRange
	CompleteRange
)

func (s State) String() string {
	switch s {
	case PartialRange:
		return "partial"
	case CompleteRange:
		return "complete"
	default:
		return "empty"
	}
}

// Selection is a check-in/check-out pair. A zero civil.Date means unset.
type Selection struct {
	Start civil.Date
	End   civil.Date
}

// NewSelection builds a Selection from optional endpoints, ordering them so
// that Start <= End when both are present.
func NewSelection(start, end *civil.Date) Selection {
	var s Selection
	if start != nil {
		s.Start = *start
	}
	if end != nil {
		s.End = *end
	}
	if s.HasStart() && s.HasEnd() && s.End.Before(s.Start) {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

func (s Selection) HasStart() bool { return isSet(s.Start) }
func (s Selection) HasEnd() bool   { return isSet(s.End) }

// State derives the selection phase. An end without a start counts as empty.
func (s Selection) State() State {
	switch {
	case !s.HasStart():
		return Empty
	case !s.HasEnd():
		return PartialRange
	default:
		return CompleteRange
	}
}

// Nights is the number of days between Start and End, zero unless complete.
func (s Selection) Nights() int {
	if s.State() != CompleteRange {
		return 0
	}
	return s.End.DaysSince(s.Start)
}

// Disabled reports whether d is in the past relative to today.
func Disabled(d, today civil.Date) bool {
	return d.Before(today)
}

// Click applies a click on d and returns the proposed selection. The bool is
// false when d is disabled, in which case s is returned unchanged.
func (s Selection) Click(d, today civil.Date) (Selection, bool) {
	if Disabled(d, today) {
		return s, false
	}
	if s.State() != PartialRange {
		return Selection{Start: d}, true
	}
	if d.Before(s.Start) {
		return Selection{Start: d, End: s.Start}, true
	}
	return Selection{Start: s.Start, End: d}, true
}

// Extend completes the range by placing End nights after the start. Without a
// start, from is used. The bool is false when the resulting start is disabled
// or nights is not positive.
func (s Selection) Extend(nights int, from, today civil.Date) (Selection, bool) {
	start := s.Start
	if !s.HasStart() {
		start = from
	}
	if nights <= 0 || !isSet(start) || Disabled(start, today) {
		return s, false
	}
	return Selection{Start: start, End: start.AddDays(nights)}, true
}

func isSet(d civil.Date) bool {
	return d != civil.Date{}
}
