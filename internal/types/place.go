package types

// PlaceQueryRequest is the body accepted by POST /find-places.
type PlaceQueryRequest struct {
	Query string `json:"query" example:"coffee shop"`              // Free-text place query.
	City  string `json:"city,omitempty" example:"Jakarta, Indonesia"` // Origin city, defaults server-side when blank.
}

// Coordinates is a resolved geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceCandidate is one result returned by the places provider.
type PlaceCandidate struct {
	PlaceID     string      `json:"place_id,omitempty"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Rating      float64     `json:"rating,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

// PlaceQueryResponse is the success payload of POST /find-places.
type PlaceQueryResponse struct {
	PlaceName        string `json:"place_name" example:"Kopi Kenangan"`
	PlaceDescription string `json:"place_description" example:"A cozy cafe."`
	GoogleMapsLink   string `json:"google_maps_link"`
	EmbedLink        string `json:"embed_link"`
}

// AddressNotAvailable is used when the provider returns no address for a place.
const AddressNotAvailable = "Address not available"
