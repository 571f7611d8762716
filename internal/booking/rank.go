package booking

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/staydesk/internal/api"
)

// RankHotels orders hotels by how closely name or city matches query, best
// first. A field containing the query scores zero. Ties keep the higher
// rating first and otherwise the backend order, so an empty query ranks by
// rating alone.
func RankHotels(query string, hotels []api.Hotel) []api.Hotel {
	q := strings.ToLower(strings.TrimSpace(query))
	type scored struct {
		hotel api.Hotel
		score float64
	}
	ranked := make([]scored, len(hotels))
	for i, h := range hotels {
		ranked[i] = scored{hotel: h}
		if q != "" {
			ranked[i].score = min(matchScore(q, h.HotelName), matchScore(q, h.City))
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].hotel.AverageRating > ranked[j].hotel.AverageRating
	})
	out := make([]api.Hotel, len(ranked))
	for i, r := range ranked {
		out[i] = r.hotel
	}
	return out
}

// matchScore is the normalised edit distance in [0,1].
func matchScore(q, field string) float64 {
	f := strings.ToLower(strings.TrimSpace(field))
	if f == "" {
		return 1
	}
	if strings.Contains(f, q) {
		return 0
	}
	dist := levenshtein.ComputeDistance(q, f)
	return float64(dist) / float64(max(len(q), len(f)))
}
