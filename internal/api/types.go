package api

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type Bed struct {
	BedTypeName string `json:"bedTypeName"`
	BedCount    int    `json:"bedCount"`
}

type Availability struct {
	Date           string `json:"date"`
	AvailableCount int    `json:"availableCount"`
}

type RoomCategory struct {
	RoomCategoryID string          `json:"roomCategoryId"`
	RoomTypeName   string          `json:"roomTypeName"`
	MaximumGuests  int             `json:"maximumGuests"`
	BaseRate       decimal.Decimal `json:"baseRate"`
	Info           string          `json:"info"`
}

type Room struct {
	RoomCategory
	Images       []string       `json:"images"`
	Facilities   []string       `json:"facilities"`
	Beds         []Bed          `json:"beds"`
	Availability []Availability `json:"availability"`
}

// MinAvailable returns the smallest nightly availability, or -1 when the
// backend sent none.
func (r Room) MinAvailable() int {
	if len(r.Availability) == 0 {
		return -1
	}
	m := r.Availability[0].AvailableCount
	for _, a := range r.Availability[1:] {
		if a.AvailableCount < m {
			m = a.AvailableCount
		}
	}
	return m
}

type Review struct {
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment"`
	CreatedAt  string  `json:"createdAt"`
	AuthorName string  `json:"authorName"`
}

type Hotel struct {
	HotelID        string         `json:"hotelId"`
	HotelName      string         `json:"hotelName"`
	City           string         `json:"city"`
	Country        string         `json:"country"`
	AddressLine    string         `json:"addressLine"`
	Summary        *string        `json:"summary"`
	ImageURL       string         `json:"imageUrl"`
	AverageRating  float64        `json:"averageRating"`
	TotalReviews   int            `json:"totalReviews"`
	Comment        string         `json:"comment"`
	RoomCategories []RoomCategory `json:"roomCategories"`
}

// FromPrice is the lowest base rate across the hotel's room categories.
func (h Hotel) FromPrice() (decimal.Decimal, bool) {
	if len(h.RoomCategories) == 0 {
		return decimal.Zero, false
	}
	low := h.RoomCategories[0].BaseRate
	for _, rc := range h.RoomCategories[1:] {
		if rc.BaseRate.LessThan(low) {
			low = rc.BaseRate
		}
	}
	return low, true
}

type HotelDetails struct {
	HotelID       string   `json:"hotelId"`
	HotelName     string   `json:"hotelName"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	AddressLine   string   `json:"addressLine"`
	Summary       *string  `json:"summary"`
	ImageURL      string   `json:"imageUrl"`
	AverageRating float64  `json:"averageRating"`
	TotalReviews  int      `json:"totalReviews"`
	Comment       string   `json:"comment"`
	Facilities    []string `json:"facilities"`
	Rooms         []Room   `json:"rooms"`
	Reviews       []Review `json:"reviews"`
}

// SearchParams are the inputs of a hotel search. Dates are sent as
// YYYY-MM-DD and guests as adults+children.
type SearchParams struct {
	Query    string
	CheckIn  civil.Date
	CheckOut civil.Date
	Adults   int
	Children int
	Page     int
	PageSize int
}

type LoginCredentials struct {
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type LoginResponse struct {
	Success bool
	Message string
	Token   string
	User    *User
}

type SignupCredentials struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

type SignupResponse struct {
	Success bool
	Message string
	UserID  string
}

// GuestDetails is the contact block collected at checkout.
type GuestDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type BookingRequest struct {
	IdempotencyKey  string       `json:"-"`
	HotelID         string       `json:"hotelId"`
	RoomCategoryID  string       `json:"roomCategoryId"`
	Quantity        int          `json:"quantity"`
	CheckIn         civil.Date   `json:"checkIn"`
	CheckOut        civil.Date   `json:"checkOut"`
	Adults          int          `json:"adults"`
	Children        int          `json:"children"`
	Guest           GuestDetails `json:"guest"`
	SpecialRequests string       `json:"specialRequests,omitempty"`
}

type BookingConfirmation struct {
	BookingID  string          `json:"bookingId"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
