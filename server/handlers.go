package server

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/russross/blackfriday/v2"
	"github.com/thoas/go-funk"

	"github.com/voyagerlab/tripplanner/planner"
)

var (
	_themes       = []string{"Couple Getaway", "Family Vacation", "Adventure Trip", "Solo Exploration"}
	_budgets      = []string{"Economy", "Standard", "Luxury"}
	_flightClass  = []string{"Economy", "Business", "First Class"}
	_hotelRatings = []string{"Any", "3", "4", "5"}
)

const (
	_defaultOrigin      = "BOM"
	_defaultDestination = "DEL"
	_defaultDays        = 5
	_defaultActivities  = "Relaxing on the beach, exploring historical sites"

	_formDateLayout = "2006-01-02"
)

type formData struct {
	Themes       []string
	Budgets      []string
	FlightClass  []string
	HotelRatings []string
	Defaults     planner.TripRequest
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	data := formData{
		Themes:       _themes,
		Budgets:      _budgets,
		FlightClass:  _flightClass,
		HotelRatings: _hotelRatings,
		Defaults: planner.TripRequest{
			Origin:      _defaultOrigin,
			Destination: _defaultDestination,
			NumDays:     _defaultDays,
			Activities:  _defaultActivities,
		},
	}
	if err := s.form.Execute(w, data); err != nil {
		s.logger.Error("render form", "error", err)
	}
}

type resultsData struct {
	Request   planner.TripRequest
	Flights   []planner.FlightCard
	Research  template.HTML
	Lodging   template.HTML
	Itinerary template.HTML
	Warnings  []string
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	req := tripRequestFromForm(r)
	plan := s.planner.Plan(r.Context(), req)

	data := resultsData{
		Request:   req,
		Flights:   plan.Flights,
		Research:  markdown(plan.Research.Content),
		Lodging:   markdown(plan.Lodging.Content),
		Itinerary: markdown(plan.Itinerary.Content),
		Warnings:  plan.Warnings,
	}
	if err := s.results.Execute(w, data); err != nil {
		s.logger.Error("render results", "error", err)
	}
}

// tripRequestFromForm shapes the submitted values. Select-style fields
// fall back to their first option on tampered input; free-text fields
// pass through untouched and are left to the downstream providers.
func tripRequestFromForm(r *http.Request) planner.TripRequest {
	days, err := strconv.Atoi(r.FormValue("num_days"))
	if err != nil || days < 1 {
		days = _defaultDays
	}

	departure, _ := time.Parse(_formDateLayout, r.FormValue("departure_date"))
	ret, _ := time.Parse(_formDateLayout, r.FormValue("return_date"))

	return planner.TripRequest{
		Origin:          r.FormValue("source"),
		Destination:     r.FormValue("destination"),
		DepartureDate:   departure,
		ReturnDate:      ret,
		NumDays:         days,
		Theme:           pickOption(r.FormValue("travel_theme"), _themes),
		Activities:      r.FormValue("activities"),
		Budget:          pickOption(r.FormValue("budget"), _budgets),
		FlightClass:     pickOption(r.FormValue("flight_class"), _flightClass),
		HotelRating:     pickOption(r.FormValue("hotel_rating"), _hotelRatings),
		VisaRequired:    r.FormValue("visa_required") != "",
		TravelInsurance: r.FormValue("travel_insurance") != "",
	}
}

func pickOption(value string, options []string) string {
	if funk.ContainsString(options, value) {
		return value
	}
	return options[0]
}

func markdown(prose string) template.HTML {
	return template.HTML(blackfriday.Run([]byte(prose)))
}
