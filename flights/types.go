package flights

import "encoding/json"

// Airport is one endpoint of a flight leg.
type Airport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// Leg is a single flight segment within an offer.
type Leg struct {
	DepartureAirport Airport `json:"departure_airport"`
	ArrivalAirport   Airport `json:"arrival_airport"`
	Airline          string  `json:"airline"`
	AirlineLogo      string  `json:"airline_logo"`
	FlightNumber     string  `json:"flight_number"`
	Duration         int     `json:"duration"`
}

// Price tolerates absent or non-numeric values in provider responses.
// An unknown price sorts after every known one.
type Price struct {
	Value float64
	Known bool
}

func (p *Price) UnmarshalJSON(data []byte) error {
	// Decode through a pointer: a JSON null leaves a plain float64
	// untouched and would otherwise read as a known price of zero.
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil || v == nil {
		p.Known = false
		return nil
	}
	p.Value = *v
	p.Known = true
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Known {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// Offer is one priced itinerary returned by the search provider. It is
// a read-only snapshot of the response; nothing mutates it after parse.
type Offer struct {
	Flights        []Leg  `json:"flights"`
	Price          Price  `json:"price"`
	TotalDuration  int    `json:"total_duration"`
	AirlineLogo    string `json:"airline_logo"`
	DepartureToken string `json:"departure_token,omitempty"`
	BookingToken   string `json:"booking_token,omitempty"`
}

// Airline returns the operating airline of the first leg, falling back
// to a fixed label when the offer carries no leg data.
func (o Offer) Airline() string {
	if len(o.Flights) > 0 && o.Flights[0].Airline != "" {
		return o.Flights[0].Airline
	}
	return "Unknown Airline"
}

// Departure returns the departure endpoint of the first leg.
func (o Offer) Departure() Airport {
	if len(o.Flights) > 0 {
		return o.Flights[0].DepartureAirport
	}
	return Airport{}
}

// Arrival returns the arrival endpoint of the last leg.
func (o Offer) Arrival() Airport {
	if len(o.Flights) > 0 {
		return o.Flights[len(o.Flights)-1].ArrivalAirport
	}
	return Airport{}
}

type searchResponse struct {
	BestFlights []Offer `json:"best_flights"`
}
