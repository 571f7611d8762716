package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validForm() CheckoutForm {
	return CheckoutForm{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Address:   "Rua Augusta 1",
		City:      "Lisbon",
		ZipCode:   "1100-048",
		Country:   "gb",
		Phone:     "+44 20 7946 0000",
	}
}

func TestCheckoutForm_Valid(t *testing.T) {
	t.Parallel()
	f := validForm()
	require.NoError(t, f.Validate())
	g := f.Guest()
	require.Equal(t, "United Kingdom", g.Country)
	require.Equal(t, "ana@example.com", g.Email)
}

func TestCheckoutForm_MissingFields(t *testing.T) {
	t.Parallel()
	err := CheckoutForm{SpecialRequests: "late arrival"}.Validate()
	require.Error(t, err)

	var fields []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var fe *FieldError
		if errors.As(e, &fe) {
			fields = append(fields, fe.Field)
		}
	}
	require.Equal(t, []string{"first name", "last name", "email", "address", "city", "zip code", "country", "phone"}, fields)
}

func TestCheckoutForm_BadEmailAndCountry(t *testing.T) {
	t.Parallel()
	f := validForm()
	f.Email = "ana.example.com"
	require.ErrorIs(t, f.Validate(), ErrInvalidEmail)

	f.Email = "ana@localhost"
	require.ErrorIs(t, f.Validate(), ErrInvalidEmail)

	f = validForm()
	f.Country = "Atlantis"
	require.ErrorContains(t, f.Validate(), `country "Atlantis" is not supported`)
}

func TestLookupCountry(t *testing.T) {
	t.Parallel()
	c, ok := LookupCountry(" japan ")
	require.True(t, ok)
	require.Equal(t, "JP", c.Code)
	_, ok = LookupCountry("XX")
	require.False(t, ok)
}
