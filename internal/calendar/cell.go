package calendar

import "cloud.google.com/go/civil"

// Shape is how a cell's highlight meets its neighbours.
type Shape int

const (
	// Rounded cells stand alone.
	Rounded Shape = iota
	// Flat cells join the highlight band of their neighbours.
	Flat
)

// Cell is the visual state of one grid day.
type Cell struct {
	Date     civil.Date
	Endpoint bool
	InRange  bool
	Disabled bool
	Outside  bool
	Today    bool
}

// Shape returns Flat only for range interiors that are not endpoints.
func (c Cell) Shape() Shape {
	if c.InRange && !c.Endpoint {
		return Flat
	}
	return Rounded
}

// Clickable reports whether a click on the cell can change the selection.
func (c Cell) Clickable() bool {
	return !c.Disabled
}

// CellState computes the visual state of d. hover is the zero date when no
// cell is hovered.
func CellState(d civil.Date, inMonth bool, sel Selection, hover, today civil.Date) Cell {
	c := Cell{
		Date:     d,
		Endpoint: (sel.HasStart() && d == sel.Start) || (sel.HasEnd() && d == sel.End),
		Disabled: Disabled(d, today),
		Outside:  !inMonth,
	}
	c.InRange = inRange(d, sel) || inHoverRange(d, sel, hover)
	c.Today = d == today && !c.Endpoint && !c.Disabled
	return c
}

func inRange(d civil.Date, sel Selection) bool {
	if sel.State() != CompleteRange {
		return false
	}
	return d.After(sel.Start) && d.Before(sel.End)
}

// inHoverRange covers the dates between the start and the hovered date,
// including the hovered date, in either direction.
func inHoverRange(d civil.Date, sel Selection, hover civil.Date) bool {
	if sel.State() != PartialRange || !isSet(hover) {
		return false
	}
	if d.After(sel.Start) {
		return !d.After(hover)
	}
	if d.Before(sel.Start) {
		return !d.Before(hover)
	}
	return false
}
