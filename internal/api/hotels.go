package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
)

// SearchHotels runs a hotel search. The backend has shipped both
// {"data":{"items":[...]}} and {"data":[...]}; anything else is treated as no
// results.
func (c *Client) SearchHotels(ctx context.Context, p SearchParams) ([]Hotel, error) {
	page, size := p.Page, p.PageSize
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}
	q := url.Values{}
	q.Set("name", p.Query)
	q.Set("checkIn", p.CheckIn.String())
	q.Set("checkOut", p.CheckOut.String())
	q.Set("guests", strconv.Itoa(p.Adults+p.Children))
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(size))

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/hotels/search", query: q}, &env); err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}

	var paged struct {
		Items []Hotel `json:"items"`
	}
	if err := json.Unmarshal(env.Data, &paged); err == nil && paged.Items != nil {
		return paged.Items, nil
	}
	var flat []Hotel
	if err := json.Unmarshal(env.Data, &flat); err == nil && flat != nil {
		return flat, nil
	}
	c.log.Warn("unexpected search response shape", zap.ByteString("data", truncate(env.Data, 256)))
	return []Hotel{}, nil
}

// HotelDetails fetches one hotel with rooms, facilities and reviews for the
// given stay.
func (c *Client) HotelDetails(ctx context.Context, hotelID string, checkIn, checkOut civil.Date, guests int) (HotelDetails, error) {
	if hotelID == "" {
		return HotelDetails{}, errors.New("hotel details: hotel id required")
	}
	q := url.Values{}
	q.Set("checkIn", checkIn.String())
	q.Set("checkOut", checkOut.String())
	q.Set("guests", strconv.Itoa(guests))

	var env struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Data    HotelDetails `json:"data"`
	}
	path := "/hotels/" + url.PathEscape(hotelID)
	if err := c.do(ctx, request{method: http.MethodGet, path: path, query: q}, &env); err != nil {
		return HotelDetails{}, fmt.Errorf("hotel details: %w", err)
	}
	if !env.Success && env.Data.HotelID == "" {
		msg := env.Message
		if msg == "" {
			msg = "hotel details not found"
		}
		return HotelDetails{}, fmt.Errorf("hotel details: %s", msg)
	}
	return env.Data, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
