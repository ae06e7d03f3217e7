package poi

import (
	"strconv"

	"github.com/FACorreiaa/go-place-finder/internal/types"
)

const (
	directionsBaseURL = "https://www.google.com/maps/dir/?api=1"
	embedBaseURL      = "https://www.google.com/maps/embed/v1/directions"
)

// LinkBuilder renders Google Maps links between two points.
type LinkBuilder struct {
	APIKey string
}

// Directions returns a navigable directions URL.
func (b LinkBuilder) Directions(origin, destination types.Coordinates) string {
	return directionsBaseURL +
		"&origin=" + formatLatLng(origin) +
		"&destination=" + formatLatLng(destination)
}

// Embed returns a directions URL for the Maps Embed API.
func (b LinkBuilder) Embed(origin, destination types.Coordinates) string {
	return embedBaseURL +
		"?key=" + b.APIKey +
		"&origin=" + formatLatLng(origin) +
		"&destination=" + formatLatLng(destination)
}

// formatLatLng renders "lat,lng" using the shortest exact decimal form.
func formatLatLng(c types.Coordinates) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
