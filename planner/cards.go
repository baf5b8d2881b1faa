package planner

import (
	"strconv"
	"time"

	"github.com/voyagerlab/tripplanner/flights"
)

const (
	_airportTimeLayout = "2006-01-02 15:04"
	_displayTimeLayout = "Jan-02, 2006 | 03:04 PM"
)

// FlightCard is one selected offer shaped for display.
type FlightCard struct {
	Airline     string
	AirlineLogo string
	Departure   string
	Arrival     string
	DurationMin int
	Price       string
	BookingURL  string
	HasBooking  bool
}

func newFlightCard(offer flights.Offer, booking flights.Booking) FlightCard {
	return FlightCard{
		Airline:     offer.Airline(),
		AirlineLogo: offer.AirlineLogo,
		Departure:   formatDateTime(offer.Departure().Time),
		Arrival:     formatDateTime(offer.Arrival().Time),
		DurationMin: offer.TotalDuration,
		Price:       displayPrice(offer.Price),
		BookingURL:  booking.URL(),
		HasBooking:  booking.Resolved(),
	}
}

func displayPrice(p flights.Price) string {
	if !p.Known {
		return "Not Available"
	}
	return strconv.FormatFloat(p.Value, 'f', -1, 64)
}

// formatDateTime renders a provider timestamp for display, degrading
// to "N/A" on anything it cannot parse.
func formatDateTime(iso string) string {
	t, err := time.Parse(_airportTimeLayout, iso)
	if err != nil {
		return "N/A"
	}
	return t.Format(_displayTimeLayout)
}
