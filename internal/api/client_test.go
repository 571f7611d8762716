package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	tr := &http.Transport{}
	t.Cleanup(func() {
		tr.CloseIdleConnections()
		srv.Close()
	})
	return New(srv.URL+"/api/v1/", WithHTTPClient(&http.Client{Transport: tr, Timeout: 2 * time.Second}))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}

var (
	oct10 = civil.Date{Year: 2025, Month: time.October, Day: 10}
	oct13 = civil.Date{Year: 2025, Month: time.October, Day: 13}
)

func TestSearchHotelsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/hotels/search", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "lisbon", q.Get("name"))
		require.Equal(t, "2025-10-10", q.Get("checkIn"))
		require.Equal(t, "2025-10-13", q.Get("checkOut"))
		require.Equal(t, "3", q.Get("guests"))
		require.Equal(t, "1", q.Get("page"))
		require.Equal(t, "10", q.Get("pageSize"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"data": map[string]any{"items": []map[string]any{{
				"hotelId": "h1", "hotelName": "Alfama Rooms", "city": "Lisbon",
				"averageRating": 8.7, "totalReviews": 120,
				"roomCategories": []map[string]any{
					{"roomCategoryId": "r1", "roomTypeName": "Double", "baseRate": 120.5},
					{"roomCategoryId": "r2", "roomTypeName": "Single", "baseRate": 89},
				},
			}}},
		})
	})

	hotels, err := c.SearchHotels(ctx(t), SearchParams{Query: "lisbon", CheckIn: oct10, CheckOut: oct13, Adults: 2, Children: 1})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	require.Equal(t, "Alfama Rooms", hotels[0].HotelName)
	from, ok := hotels[0].FromPrice()
	require.True(t, ok)
	require.True(t, decimal.NewFromInt(89).Equal(from))
}

func TestSearchHotelsResponseShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"items", `{"data":{"items":[{"hotelId":"a"},{"hotelId":"b"}]}}`, 2},
		{"flat", `{"data":[{"hotelId":"a"}]}`, 1},
		{"empty items", `{"data":{"items":[]}}`, 0},
		{"unexpected", `{"data":"nope"}`, 0},
		{"missing", `{}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})
			hotels, err := c.SearchHotels(ctx(t), SearchParams{Query: "x", CheckIn: oct10, CheckOut: oct13, Adults: 1})
			require.NoError(t, err)
			require.NotNil(t, hotels)
			require.Len(t, hotels, tc.want)
		})
	}
}

func TestSearchHotelsStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"message": "upstream down"})
	})
	_, err := c.SearchHotels(ctx(t), SearchParams{Query: "x", CheckIn: oct10, CheckOut: oct13, Adults: 1})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusInternalServerError, se.Code)
	require.Equal(t, "upstream down", se.Message)
}

func TestSearchHotelsBadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":`))
	})
	_, err := c.SearchHotels(ctx(t), SearchParams{Query: "x", CheckIn: oct10, CheckOut: oct13, Adults: 1})
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestHotelDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/hotels/h%201", r.URL.EscapedPath())
		require.Equal(t, "2", r.URL.Query().Get("guests"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"hotelId": "h 1", "hotelName": "Harbour View",
				"facilities": []string{"Free Wi-Fi", "Gym"},
				"rooms": []map[string]any{{
					"roomCategoryId": "r1", "roomTypeName": "Twin", "maximumGuests": 2, "baseRate": "99.90",
					"beds":         []map[string]any{{"bedTypeName": "Single", "bedCount": 2}},
					"availability": []map[string]any{{"date": "2025-10-10", "availableCount": 4}, {"date": "2025-10-11", "availableCount": 1}},
				}},
				"reviews": []map[string]any{{"rating": 9, "comment": "great", "createdAt": "2025-01-02T10:00:00Z"}},
			},
		})
	})
	d, err := c.HotelDetails(ctx(t), "h 1", oct10, oct13, 2)
	require.NoError(t, err)
	require.Equal(t, "Harbour View", d.HotelName)
	require.Len(t, d.Rooms, 1)
	require.Equal(t, "Twin", d.Rooms[0].RoomTypeName)
	require.True(t, decimal.RequireFromString("99.90").Equal(d.Rooms[0].BaseRate))
	require.Equal(t, 1, d.Rooms[0].MinAvailable())
	require.Equal(t, 2, d.Rooms[0].Beds[0].BedCount)
}

func TestHotelDetailsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := c.HotelDetails(ctx(t), "missing", oct10, oct13, 2)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHotelDetailsUnsuccessful(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"success": false, "message": "closed for renovation"})
	})
	_, err := c.HotelDetails(ctx(t), "h1", oct10, oct13, 2)
	require.ErrorContains(t, err, "closed for renovation")
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var creds LoginCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "secret" {
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"token": "tok-1", "user": map[string]string{"id": "u1", "email": creds.EmailAddress}})
	})

	res, err := c.Login(ctx(t), LoginCredentials{EmailAddress: "a@b.co", Password: "secret"})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, "Login successful", res.Message)
	require.Equal(t, "tok-1", res.Token)
	require.Equal(t, "u1", res.User.ID)

	res, err = c.Login(ctx(t), LoginCredentials{EmailAddress: "a@b.co", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
	require.False(t, res.Success)
	require.Equal(t, "Invalid email or password", res.Message)
}

func TestLoginDefaultFailureMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	res, err := c.Login(ctx(t), LoginCredentials{EmailAddress: "a@b.co"})
	require.Error(t, err)
	require.Equal(t, "Login failed. Please check your credentials.", res.Message)
}

func TestSignup(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var creds SignupCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.EmailAddress == "taken@b.co" {
			writeJSON(t, w, http.StatusConflict, map[string]string{"message": "Email already registered"})
			return
		}
		writeJSON(t, w, http.StatusCreated, map[string]string{"id": "u9"})
	})

	res, err := c.Signup(ctx(t), SignupCredentials{FirstName: "Ana", LastName: "Silva", EmailAddress: "ana@b.co", Password: "pw"})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, "u9", res.UserID)

	res, err = c.Signup(ctx(t), SignupCredentials{EmailAddress: "taken@b.co"})
	require.Error(t, err)
	require.False(t, res.Success)
	require.Equal(t, "Email already registered", res.Message)
}

func TestCreateBooking(t *testing.T) {
	var keys []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/bookings", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "2025-10-10", body["checkIn"])
		require.Equal(t, "2025-10-13", body["checkOut"])
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"bookingId": "BK-42", "status": "confirmed", "totalPrice": 361.5},
		})
	}).WithToken("tok-1")

	req := BookingRequest{HotelID: "h1", RoomCategoryID: "r1", Quantity: 1, CheckIn: oct10, CheckOut: oct13, Adults: 2}
	conf, err := c.CreateBooking(ctx(t), req)
	require.NoError(t, err)
	require.Equal(t, "BK-42", conf.BookingID)
	require.True(t, decimal.RequireFromString("361.5").Equal(conf.TotalPrice))

	req.IdempotencyKey = "fixed-key"
	_, err = c.CreateBooking(ctx(t), req)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	require.NotEmpty(t, keys[0])
	require.Equal(t, "fixed-key", keys[1])
}

func TestCreateBookingMissingID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"success": false, "message": "room sold out"})
	})
	_, err := c.CreateBooking(ctx(t), BookingRequest{HotelID: "h1"})
	require.ErrorIs(t, err, ErrBadResponse)
	require.ErrorContains(t, err, "room sold out")
}

func TestWithTokenCopies(t *testing.T) {
	base := New("http://example.invalid")
	authed := base.WithToken("t")
	require.False(t, base.Authenticated())
	require.True(t, authed.Authenticated())
}

func TestContextCancel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.SearchHotels(cctx, SearchParams{Query: "x"})
	require.True(t, errors.Is(err, context.Canceled))
}

func TestWithTimeoutKeepsHTTPClient(t *testing.T) {
	tr := &http.Transport{}
	t.Cleanup(tr.CloseIdleConnections)
	custom := &http.Client{Transport: tr, Timeout: time.Minute}

	c := New("http://example.test", WithHTTPClient(custom), WithTimeout(5*time.Second))
	require.Same(t, tr, c.http.Transport)
	require.Equal(t, 5*time.Second, c.http.Timeout)
	require.Equal(t, time.Minute, custom.Timeout, "caller's client is not modified")

	c = New("http://example.test", WithTimeout(3*time.Second))
	require.Equal(t, 3*time.Second, c.http.Timeout)
}
