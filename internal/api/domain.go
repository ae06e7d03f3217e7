package api

// Response is the JSON envelope used for error replies.
type Response struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error,omitempty" example:"No places found for your query."`
	RequestID string `json:"request_id,omitempty"`
}
