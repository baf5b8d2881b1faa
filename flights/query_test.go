package flights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	outbound := time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC)
	ret := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	q := BuildQuery("BOM", "DEL", outbound, ret)

	assert.Equal(t, "BOM", q.Origin)
	assert.Equal(t, "DEL", q.Destination)
	assert.Equal(t, "2026-09-10", q.OutboundDate)
	assert.Equal(t, "2026-09-15", q.ReturnDate)
	assert.Equal(t, "INR", q.Currency)
	assert.Equal(t, "en", q.Locale)
}

func TestQueryParams(t *testing.T) {
	t.Parallel()

	q := Query{
		Origin:       "BOM",
		Destination:  "DEL",
		OutboundDate: "2026-09-10",
		ReturnDate:   "2026-09-15",
		Currency:     "INR",
		Locale:       "en",
	}

	params := q.params()
	assert.Equal(t, "google_flights", params.Get("engine"))
	assert.Equal(t, "BOM", params.Get("departure_id"))
	assert.Equal(t, "DEL", params.Get("arrival_id"))
	assert.Equal(t, "2026-09-10", params.Get("outbound_date"))
	assert.Equal(t, "2026-09-15", params.Get("return_date"))
	assert.Equal(t, "INR", params.Get("currency"))
	assert.Equal(t, "en", params.Get("hl"))
}
