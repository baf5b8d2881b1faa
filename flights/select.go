package flights

import (
	"math"
	"sort"
)

// SelectCheapest returns the n cheapest offers, fewer if the input is
// shorter. The sort is stable and ascending by price; offers with an
// unknown price sink to the end. The input slice is not modified.
func SelectCheapest(offers []Offer, n int) []Offer {
	if n <= 0 || len(offers) == 0 {
		return []Offer{}
	}

	sorted := make([]Offer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortPrice(sorted[i]) < sortPrice(sorted[j])
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func sortPrice(o Offer) float64 {
	if !o.Price.Known {
		return math.Inf(1)
	}
	return o.Price.Value
}
