package flights

import (
	"context"

	"github.com/pkg/errors"

	"github.com/voyagerlab/tripplanner/serpapi"
)

// Client searches Google Flights through the serpapi client.
type Client struct {
	api *serpapi.Client
}

func NewClient(api *serpapi.Client) *Client {
	return &Client{api: api}
}

// Search runs the primary flight search and returns the raw offer
// list. A response without best_flights yields an empty slice.
func (c *Client) Search(ctx context.Context, query Query) ([]Offer, error) {
	var resp searchResponse
	if err := c.api.Search(ctx, query.params(), &resp); err != nil {
		return nil, errors.Wrap(err, "flight search")
	}
	return resp.BestFlights, nil
}

// searchWithToken runs the secondary lookup that trades an offer's
// departure token for booking details.
func (c *Client) searchWithToken(ctx context.Context, query Query, token string) (*searchResponse, error) {
	params := query.params()
	params.Set("departure_token", token)

	var resp searchResponse
	if err := c.api.Search(ctx, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
