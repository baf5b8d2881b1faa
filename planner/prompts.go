package planner

import (
	"fmt"
	"strings"
	"time"
)

const (
	_researchPromptTemplate = "Research the best attractions and activities in %s for a %d-day %s trip. " +
		"The traveler enjoys: %s. Budget: %s. Flight Class: %s. " +
		"Hotel Rating: %s. Visa Requirement: %t. Travel Insurance: %t."

	_lodgingPromptTemplate = "Find the best hotels and restaurants near popular attractions in %s for a %d-day %s trip. " +
		"Budget: %s. Hotel Rating: %s. Preferred activities: %s."

	_itineraryPromptTemplate = "Based on the following data, create a %d-day itinerary for a %s trip to %s. " +
		"The traveler enjoys: %s. Budget: %s. Flight Class: %s. Hotel Rating: %s. " +
		"Visa Requirement: %t. Travel Insurance: %t. Research: %s. " +
		"Flights: %s. Hotels & Restaurants: %s."
)

// ResearchPrompt builds the destination-research prompt.
func ResearchPrompt(req TripRequest) string {
	return fmt.Sprintf(_researchPromptTemplate,
		req.Destination, req.NumDays, strings.ToLower(req.Theme),
		req.Activities, req.Budget, req.FlightClass,
		req.HotelRating, req.VisaRequired, req.TravelInsurance)
}

// LodgingPrompt builds the hotel and restaurant prompt.
func LodgingPrompt(req TripRequest) string {
	return fmt.Sprintf(_lodgingPromptTemplate,
		req.Destination, req.NumDays, strings.ToLower(req.Theme),
		req.Budget, req.HotelRating, req.Activities)
}

// ItineraryPrompt builds the final planning prompt. research and
// lodging are the other agents' prose; flightsJSON is the selected
// offer list serialized for the model.
func ItineraryPrompt(req TripRequest, research, flightsJSON, lodging string) string {
	return fmt.Sprintf(_itineraryPromptTemplate,
		req.NumDays, strings.ToLower(req.Theme), req.Destination,
		req.Activities, req.Budget, req.FlightClass, req.HotelRating,
		req.VisaRequired, req.TravelInsurance, research,
		flightsJSON, lodging)
}

func researcherInstructions(now time.Time) []string {
	return []string{
		currentTimeLine(now),
		"Identify the travel destination specified by the user.",
		"Gather detailed information on the destination, including climate, culture, and safety tips.",
		"Find popular attractions, landmarks, and must-visit places.",
		"Search for activities that match the user's interests and travel style.",
		"Prioritize information from reliable sources and official travel guides.",
		"Provide well-structured summaries with key insights and recommendations.",
	}
}

func finderInstructions(now time.Time) []string {
	return []string{
		currentTimeLine(now),
		"Identify key locations in the user's travel itinerary.",
		"Search for highly rated hotels near those locations.",
		"Search for top-rated restaurants based on cuisine preferences and proximity.",
		"Prioritize results based on user preferences, ratings, and availability.",
		"Provide direct booking links or reservation options where possible.",
	}
}

func itineraryInstructions(now time.Time) []string {
	return []string{
		currentTimeLine(now),
		"Gather details about the user's travel preferences and budget.",
		"Create a detailed itinerary with scheduled activities and estimated costs.",
		"Ensure the itinerary includes transportation options and travel time estimates.",
		"Optimize the schedule for convenience and enjoyment.",
		"Present the itinerary in a structured format.",
	}
}

func currentTimeLine(now time.Time) string {
	return fmt.Sprintf("Current system time: %s.", now.Format("2006-01-02 15:04"))
}
