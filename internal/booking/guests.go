package booking

import "fmt"

type GuestKind int

const (
	Adults GuestKind = iota
	Children
	Rooms
)

func (k GuestKind) String() string {
	switch k {
	case Adults:
		return "adults"
	case Children:
		return "children"
	case Rooms:
		return "rooms"
	default:
		return "unknown"
	}
}

type limits struct{ min, max int }

var guestLimits = map[GuestKind]limits{
	Adults:   {1, 30},
	Children: {0, 10},
	Rooms:    {1, 30},
}

// Guests is the occupancy for a search. Counters stay within their limits.
type Guests struct {
	Adults   int
	Children int
	Rooms    int
}

func DefaultGuests() Guests {
	return Guests{Adults: 2, Children: 0, Rooms: 1}
}

// NewGuests clamps each counter into range.
func NewGuests(adults, children, rooms int) Guests {
	return Guests{
		Adults:   clamp(adults, guestLimits[Adults]),
		Children: clamp(children, guestLimits[Children]),
		Rooms:    clamp(rooms, guestLimits[Rooms]),
	}
}

func (g Guests) Get(k GuestKind) int {
	switch k {
	case Adults:
		return g.Adults
	case Children:
		return g.Children
	case Rooms:
		return g.Rooms
	}
	return 0
}

func (g Guests) set(k GuestKind, v int) Guests {
	v = clamp(v, guestLimits[k])
	switch k {
	case Adults:
		g.Adults = v
	case Children:
		g.Children = v
	case Rooms:
		g.Rooms = v
	}
	return g
}

func (g Guests) Inc(k GuestKind) Guests { return g.set(k, g.Get(k)+1) }
func (g Guests) Dec(k GuestKind) Guests { return g.set(k, g.Get(k)-1) }

// CanInc reports whether k is below its upper limit.
func (g Guests) CanInc(k GuestKind) bool { return g.Get(k) < guestLimits[k].max }
func (g Guests) CanDec(k GuestKind) bool { return g.Get(k) > guestLimits[k].min }

// Total is the head count sent to the backend. Rooms are not guests.
func (g Guests) Total() int {
	return g.Adults + g.Children
}

func (g Guests) String() string {
	return fmt.Sprintf("%s · %s · %s",
		plural(g.Adults, "adult", "adults"),
		plural(g.Children, "child", "children"),
		plural(g.Rooms, "room", "rooms"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func clamp(v int, l limits) int {
	if v < l.min {
		return l.min
	}
	if v > l.max {
		return l.max
	}
	return v
}
