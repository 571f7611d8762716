package booking

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jask/staydesk/internal/api"
)

var ErrInvalidEmail = errors.New("email address is not valid")

// FieldError names a missing required checkout field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

type Country struct {
	Name string
	Code string
}

// Countries offered in the checkout form.
var Countries = []Country{
	{"India", "IN"},
	{"United Kingdom", "GB"},
	{"United States", "US"},
	{"Canada", "CA"},
	{"Australia", "AU"},
	{"Germany", "DE"},
	{"France", "FR"},
	{"Italy", "IT"},
	{"Spain", "ES"},
	{"Japan", "JP"},
}

// LookupCountry matches by ISO code or by name, ignoring case.
func LookupCountry(s string) (Country, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Countries {
		if strings.EqualFold(c.Code, s) || strings.EqualFold(c.Name, s) {
			return c, true
		}
	}
	return Country{}, false
}

type CheckoutForm struct {
	FirstName       string
	LastName        string
	Email           string
	Address         string
	City            string
	ZipCode         string
	Country         string
	Phone           string
	SpecialRequests string
}

// Validate reports every problem at once. Special requests are optional.
func (f CheckoutForm) Validate() error {
	var errs []error
	required := []struct {
		name  string
		value string
	}{
		{"first name", f.FirstName},
		{"last name", f.LastName},
		{"email", f.Email},
		{"address", f.Address},
		{"city", f.City},
		{"zip code", f.ZipCode},
		{"country", f.Country},
		{"phone", f.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, &FieldError{Field: r.name})
		}
	}
	if email := strings.TrimSpace(f.Email); email != "" && !validEmail(email) {
		errs = append(errs, ErrInvalidEmail)
	}
	if c := strings.TrimSpace(f.Country); c != "" {
		if _, ok := LookupCountry(c); !ok {
			errs = append(errs, fmt.Errorf("country %q is not supported", c))
		}
	}
	return errors.Join(errs...)
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

// Guest converts the form into the API contact block, normalising the
// country to its display name.
func (f CheckoutForm) Guest() api.GuestDetails {
	country := strings.TrimSpace(f.Country)
	if c, ok := LookupCountry(country); ok {
		country = c.Name
	}
	return api.GuestDetails{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
		Address:   strings.TrimSpace(f.Address),
		City:      strings.TrimSpace(f.City),
		ZipCode:   strings.TrimSpace(f.ZipCode),
		Country:   country,
		Phone:     strings.TrimSpace(f.Phone),
	}
}
