package flights

import (
	"context"

	"github.com/pkg/errors"
)

const _bookingURLTemplate = "https://www.google.com/travel/flights?tfs="

// Booking is the resolved booking reference for a single offer. The
// zero Token means no link is available.
type Booking struct {
	OfferIndex int
	Token      string
}

// Resolved reports whether a booking token was obtained.
func (b Booking) Resolved() bool {
	return b.Token != ""
}

// URL returns the deep link into the provider's booking flow, or "#"
// when no token was resolved.
func (b Booking) URL() string {
	if !b.Resolved() {
		return "#"
	}
	return _bookingURLTemplate + b.Token
}

// Resolver performs the per-offer secondary lookup that turns a
// departure token into a booking token.
type Resolver struct {
	client *Client
}

func NewResolver(client *Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve makes exactly one attempt to obtain a booking token for the
// offer at display index idx. Offers without a departure token return
// immediately with an absent reference and no network call. A failed
// lookup returns an absent reference together with an error naming the
// offer's 1-based position; the caller surfaces it as a warning and
// keeps processing sibling offers.
func (r *Resolver) Resolve(ctx context.Context, offer Offer, query Query, idx int) (Booking, error) {
	booking := Booking{OfferIndex: idx}
	if offer.DepartureToken == "" {
		return booking, nil
	}

	resp, err := r.client.searchWithToken(ctx, query, offer.DepartureToken)
	if err != nil {
		return booking, errors.Wrapf(err, "booking lookup for flight #%d", idx+1)
	}

	// Same index first, else first entry. The provider does not
	// guarantee ordering parity between the primary and secondary
	// responses; this mirrors its documented examples rather than
	// correlating offers by identity.
	list := resp.BestFlights
	switch {
	case idx < len(list):
		booking.Token = list[idx].BookingToken
	case len(list) > 0:
		booking.Token = list[0].BookingToken
	}
	return booking, nil
}
