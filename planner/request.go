package planner

import "time"

// TripRequest is everything the traveler supplies on the form. It is
// read-only for the duration of one pipeline run.
type TripRequest struct {
	Origin      string
	Destination string

	DepartureDate time.Time
	ReturnDate    time.Time
	NumDays       int

	Theme      string
	Activities string

	Budget      string
	FlightClass string
	HotelRating string

	VisaRequired    bool
	TravelInsurance bool
}
