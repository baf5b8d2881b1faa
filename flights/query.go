package flights

import (
	"net/url"
	"time"
)

const (
	_defaultCurrency = "INR"
	_defaultLocale   = "en"

	_dateLayout = "2006-01-02"
)

// Query holds the parameters of one flight search. Immutable once
// built; one instance per search request.
type Query struct {
	Origin       string
	Destination  string
	OutboundDate string
	ReturnDate   string
	Currency     string
	Locale       string
}

// BuildQuery coerces the dates to their wire form and applies the
// currency and locale defaults. No validation happens here; malformed
// input is left to the search provider to reject.
func BuildQuery(origin, destination string, outbound, ret time.Time) Query {
	return Query{
		Origin:       origin,
		Destination:  destination,
		OutboundDate: outbound.Format(_dateLayout),
		ReturnDate:   ret.Format(_dateLayout),
		Currency:     _defaultCurrency,
		Locale:       _defaultLocale,
	}
}

func (q Query) params() url.Values {
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", q.Origin)
	params.Set("arrival_id", q.Destination)
	params.Set("outbound_date", q.OutboundDate)
	params.Set("return_date", q.ReturnDate)
	params.Set("currency", q.Currency)
	params.Set("hl", q.Locale)
	return params
}
