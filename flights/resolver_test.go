package flights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagerlab/tripplanner/serpapi"
)

// fakeProvider counts secondary lookups and serves a scripted body.
type fakeProvider struct {
	calls  int
	status int
	body   string
}

func (f *fakeProvider) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		if f.status != 0 {
			w.WriteHeader(f.status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(f.body))
	}
}

func newTestResolver(t *testing.T, f *fakeProvider) *Resolver {
	t.Helper()
	ts := httptest.NewServer(f.handler())
	t.Cleanup(ts.Close)
	client := NewClient(serpapi.NewClient("test-key", serpapi.WithBaseURL(ts.URL)))
	return NewResolver(client)
}

func testQuery() Query {
	return Query{
		Origin:       "BOM",
		Destination:  "DEL",
		OutboundDate: "2026-09-10",
		ReturnDate:   "2026-09-15",
		Currency:     "INR",
		Locale:       "en",
	}
}

func TestResolveWithoutTokenMakesNoCall(t *testing.T) {
	t.Parallel()

	f := &fakeProvider{body: `{"best_flights":[{"booking_token":"T1"}]}`}
	resolver := newTestResolver(t, f)

	booking, err := resolver.Resolve(context.Background(), Offer{}, testQuery(), 0)
	require.NoError(t, err)
	assert.False(t, booking.Resolved())
	assert.Equal(t, "#", booking.URL())
	assert.Equal(t, 0, f.calls)
}

func TestResolveSameIndex(t *testing.T) {
	t.Parallel()

	f := &fakeProvider{body: `{"best_flights":[{"booking_token":"T1"}]}`}
	resolver := newTestResolver(t, f)

	offer := Offer{DepartureToken: "abc"}
	booking, err := resolver.Resolve(context.Background(), offer, testQuery(), 0)
	require.NoError(t, err)
	assert.True(t, booking.Resolved())
	assert.Equal(t, "T1", booking.Token)
	assert.Equal(t, "https://www.google.com/travel/flights?tfs=T1", booking.URL())
	assert.Equal(t, 1, f.calls)
}

func TestResolveFallsBackToFirstEntry(t *testing.T) {
	t.Parallel()

	f := &fakeProvider{body: `{"best_flights":[{"booking_token":"T1"}]}`}
	resolver := newTestResolver(t, f)

	offer := Offer{DepartureToken: "abc"}
	booking, err := resolver.Resolve(context.Background(), offer, testQuery(), 2)
	require.NoError(t, err)
	assert.Equal(t, "T1", booking.Token)
}

func TestResolveEmptySecondaryList(t *testing.T) {
	t.Parallel()

	f := &fakeProvider{body: `{"best_flights":[]}`}
	resolver := newTestResolver(t, f)

	offer := Offer{DepartureToken: "abc"}
	booking, err := resolver.Resolve(context.Background(), offer, testQuery(), 0)
	require.NoError(t, err)
	assert.False(t, booking.Resolved())
	assert.Equal(t, "#", booking.URL())
}

func TestResolveLookupFailure(t *testing.T) {
	t.Parallel()

	f := &fakeProvider{status: http.StatusInternalServerError}
	resolver := newTestResolver(t, f)

	offer := Offer{DepartureToken: "abc"}
	booking, err := resolver.Resolve(context.Background(), offer, testQuery(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flight #2")
	assert.False(t, booking.Resolved())
	assert.Equal(t, 1, f.calls, "exactly one attempt, no retries")
}

func TestResolveFailureDoesNotAbortSiblings(t *testing.T) {
	t.Parallel()

	f := &fakeProvider{status: http.StatusBadGateway}
	resolver := newTestResolver(t, f)

	offers := []Offer{
		{DepartureToken: "a"},
		{},
		{DepartureToken: "c"},
	}

	resolved := 0
	for idx, offer := range offers {
		_, err := resolver.Resolve(context.Background(), offer, testQuery(), idx)
		if idx == 1 {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
		resolved++
	}
	assert.Equal(t, 3, resolved)
	assert.Equal(t, 2, f.calls, "only token-carrying offers hit the provider")
}
