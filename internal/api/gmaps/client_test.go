package gmaps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-place-finder/internal/types"
)

const testAPIKey = "AIzaTestKey"

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewClient(testAPIKey, 5*time.Second, logger, WithBaseURL(server.URL))
	require.NoError(t, err)
	return c
}

func TestClient_Geocode(t *testing.T) {
	t.Run("first result is used", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/maps/api/geocode/json", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Jakarta, Indonesia", r.URL.Query().Get("address"))
			assert.Equal(t, testAPIKey, r.URL.Query().Get("key"))
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"status":"OK","results":[
				{"geometry":{"location":{"lat":-6.2,"lng":106.8}}},
				{"geometry":{"location":{"lat":1,"lng":2}}}
			]}`)
		})
		c := newTestClient(t, mux)

		coords, err := c.Geocode(context.Background(), "Jakarta, Indonesia")
		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.Equal(t, types.Coordinates{Latitude: -6.2, Longitude: 106.8}, *coords)
	})

	t.Run("zero results is not an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/maps/api/geocode/json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
		})
		c := newTestClient(t, mux)

		coords, err := c.Geocode(context.Background(), "Atlantis")
		require.NoError(t, err)
		assert.Nil(t, coords)
	})

	t.Run("provider denial is an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/maps/api/geocode/json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid.","results":[]}`)
		})
		c := newTestClient(t, mux)

		_, err := c.Geocode(context.Background(), "Jakarta")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REQUEST_DENIED")
	})
}

func TestClient_SearchText(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/place/textsearch/json", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "coffee shop", q.Get("query"))
		assert.Equal(t, "5000", q.Get("radius"))
		assert.NotEmpty(t, q.Get("location"))
		fmt.Fprint(w, `{"status":"OK","results":[
			{"name":"Kopi A","place_id":"a","vicinity":"Jl. Sudirman 1","rating":4.5,"geometry":{"location":{"lat":-6.21,"lng":106.81}}},
			{"name":"Kopi B","place_id":"b","formatted_address":"Jl. Thamrin 2, Jakarta","geometry":{"location":{"lat":-6.19,"lng":106.82}}},
			{"name":"Kopi C","place_id":"c","geometry":{"location":{"lat":-6.18,"lng":106.83}}}
		]}`)
	})
	c := newTestClient(t, mux)

	candidates, err := c.SearchText(context.Background(), "coffee shop", types.Coordinates{Latitude: -6.2, Longitude: 106.8}, 5000)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, "Kopi A", candidates[0].Name)
	assert.Equal(t, "Jl. Sudirman 1", candidates[0].Address)
	assert.InDelta(t, 4.5, candidates[0].Rating, 0.001)
	assert.Equal(t, types.Coordinates{Latitude: -6.21, Longitude: 106.81}, candidates[0].Coordinates)

	assert.Equal(t, "Jl. Thamrin 2, Jakarta", candidates[1].Address)
	assert.Equal(t, types.AddressNotAvailable, candidates[2].Address)
}

func TestClient_SearchText_ZeroResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/place/textsearch/json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	})
	c := newTestClient(t, mux)

	candidates, err := c.SearchText(context.Background(), "unicorn stable", types.Coordinates{Latitude: -6.2, Longitude: 106.8}, 5000)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
