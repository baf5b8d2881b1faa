// Package planner runs the request-per-render trip pipeline: flight
// search, cheapest-offer selection, booking-link resolution, and the
// three scripted agents, in that order, strictly sequentially. Every
// external failure is handled at its call site and surfaced as a
// user-visible warning; a render always completes.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tidwall/pretty"

	"github.com/voyagerlab/tripplanner/agent"
	"github.com/voyagerlab/tripplanner/config"
	"github.com/voyagerlab/tripplanner/flights"
	"github.com/voyagerlab/tripplanner/llm"
	"github.com/voyagerlab/tripplanner/serpapi"
	"github.com/voyagerlab/tripplanner/tool"
	"github.com/voyagerlab/tripplanner/tool/search"
)

const _topOffers = 3

type Planner struct {
	currency string
	locale   string

	flights  *flights.Client
	resolver *flights.Resolver

	researcher *agent.Agent
	finder     *agent.Agent
	itinerary  *agent.Agent

	logger *slog.Logger
}

// New wires the pipeline from an explicit configuration. The agent
// instruction sets are re-evaluated per run so the current-time line
// stays fresh over the server's lifetime.
func New(cfg config.Config, model llm.LLM, api *serpapi.Client) (*Planner, error) {
	searchTool, err := search.New(api)
	if err != nil {
		return nil, err
	}
	tools := []tool.Tool{searchTool}

	researcher, err := agent.New(
		agent.WithName("Researcher"),
		agent.WithDesc("Researches the destination's attractions, climate, culture, and safety."),
		agent.WithInstructionsFunc(func() []string { return researcherInstructions(time.Now()) }),
		agent.WithPlaceholder("No research results due to error."),
		agent.WithLLM(model),
		agent.WithTools(tools),
	)
	if err != nil {
		return nil, err
	}

	finder, err := agent.New(
		agent.WithName("Hotel & Restaurant Finder"),
		agent.WithDesc("Finds highly rated hotels and restaurants near the itinerary's key locations."),
		agent.WithInstructionsFunc(func() []string { return finderInstructions(time.Now()) }),
		agent.WithPlaceholder("No hotels/restaurants found due to error."),
		agent.WithLLM(model),
		agent.WithTools(tools),
	)
	if err != nil {
		return nil, err
	}

	itinerary, err := agent.New(
		agent.WithName("Planner"),
		agent.WithDesc("Builds the day-by-day itinerary from the gathered research, flights, and lodging."),
		agent.WithInstructionsFunc(func() []string { return itineraryInstructions(time.Now()) }),
		agent.WithPlaceholder("No itinerary generated due to error."),
		agent.WithLLM(model),
	)
	if err != nil {
		return nil, err
	}

	client := flights.NewClient(api)
	return &Planner{
		currency:   cfg.Currency,
		locale:     cfg.Locale,
		flights:    client,
		resolver:   flights.NewResolver(client),
		researcher: researcher,
		finder:     finder,
		itinerary:  itinerary,
		logger:     slog.Default(),
	}, nil
}

// Plan is the outcome of one pipeline run. Agent results carry
// placeholder prose on failure, so all fields are always renderable.
type Plan struct {
	Flights   []FlightCard
	Research  agent.Result
	Lodging   agent.Result
	Itinerary agent.Result
	Warnings  []string
}

func (p *Plan) warnf(format string, args ...interface{}) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

// Plan runs the whole pipeline to completion. It never returns an
// error: each stage degrades independently and records a warning.
func (p *Planner) Plan(ctx context.Context, req TripRequest) *Plan {
	plan := &Plan{}

	query := flights.BuildQuery(req.Origin, req.Destination, req.DepartureDate, req.ReturnDate)
	query.Currency = p.currency
	query.Locale = p.locale

	offers, err := p.flights.Search(ctx, query)
	if err != nil {
		p.logger.WarnContext(ctx, "flight search failed", "error", err)
		plan.warnf("Error fetching flights: %v", err)
	}
	top := flights.SelectCheapest(offers, _topOffers)
	if len(top) == 0 {
		plan.warnf("No flight data available.")
	}

	// One attempt per offer; a failed lookup degrades to a disabled
	// link and never blocks the sibling offers.
	for idx, offer := range top {
		booking, err := p.resolver.Resolve(ctx, offer, query, idx)
		if err != nil {
			p.logger.WarnContext(ctx, "booking resolution failed", "offer", idx+1, "error", err)
			plan.warnf("Could not fetch booking link for flight #%d: %v", idx+1, err)
		}
		plan.Flights = append(plan.Flights, newFlightCard(offer, booking))
	}

	plan.Research = p.researcher.RunWithReference(ctx, ResearchPrompt(req),
		"best attractions and activities in "+req.Destination)
	if !plan.Research.OK() {
		plan.warnf("Research agent error: %v", plan.Research.Err)
	}

	plan.Lodging = p.finder.RunWithReference(ctx, LodgingPrompt(req),
		"best hotels and restaurants near popular attractions in "+req.Destination)
	if !plan.Lodging.OK() {
		plan.warnf("Hotel & Restaurant agent error: %v", plan.Lodging.Err)
	}

	plan.Itinerary = p.itinerary.Run(ctx,
		ItineraryPrompt(req, plan.Research.Content, flightsJSON(top), plan.Lodging.Content))
	if !plan.Itinerary.OK() {
		plan.warnf("Planner agent error: %v", plan.Itinerary.Err)
	}

	p.logger.InfoContext(ctx, "trip plan generated",
		"destination", req.Destination, "flights", len(plan.Flights), "warnings", len(plan.Warnings))
	return plan
}

func flightsJSON(offers []flights.Offer) string {
	raw, err := json.Marshal(offers)
	if err != nil {
		return "[]"
	}
	return string(pretty.Pretty(raw))
}
