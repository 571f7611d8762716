package booking

import (
	"github.com/shopspring/decimal"

	"github.com/jask/staydesk/internal/api"
	"github.com/jask/staydesk/internal/calendar"
)

type LineItem struct {
	RoomCategoryID string
	RoomType       string
	Quantity       int
	Rate           decimal.Decimal
	Nights         int
}

func (l LineItem) Subtotal() decimal.Decimal {
	return l.Rate.Mul(decimal.NewFromInt(int64(l.Quantity))).Mul(decimal.NewFromInt(int64(l.Nights)))
}

// Cart holds the rooms reserved at one hotel for one stay. Line items take
// their night count from the stay, so a cart built for other dates must be
// replaced rather than reused.
type Cart struct {
	HotelID string
	Stay    calendar.Selection
	Items   []LineItem
}

func NewCart(hotelID string, stay calendar.Selection) Cart {
	return Cart{HotelID: hotelID, Stay: stay}
}

// For reports whether the cart was built for this hotel and stay.
func (c Cart) For(hotelID string, stay calendar.Selection) bool {
	return c.HotelID == hotelID && c.Stay == stay
}

// Add appends room for the cart's stay, or bumps the quantity when the room
// category is already in the cart.
func (c *Cart) Add(room api.RoomCategory) {
	for i := range c.Items {
		if c.Items[i].RoomCategoryID == room.RoomCategoryID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, LineItem{
		RoomCategoryID: room.RoomCategoryID,
		RoomType:       room.RoomTypeName,
		Quantity:       1,
		Rate:           room.BaseRate,
		Nights:         c.Stay.Nights(),
	})
}

func (c *Cart) Remove(roomCategoryID string) {
	for i := range c.Items {
		if c.Items[i].RoomCategoryID != roomCategoryID {
			continue
		}
		c.Items[i].Quantity--
		if c.Items[i].Quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return
	}
}

func (c Cart) Empty() bool { return len(c.Items) == 0 }

func (c Cart) Rooms() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Total is the sum of rate × quantity × nights over all items.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
