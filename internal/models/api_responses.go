package models

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// LookupRequest represents the request body for a fetch-by-id from the screen
type LookupRequest struct {
	LookupID string `form:"lookupId" json:"lookupId"`
}

// StateResponse wraps a screen snapshot with its banner classification
type StateResponse struct {
	ScreenState
	StatusKind StatusKind `json:"statusKind"`
}

// NewStateResponse builds the API view of a snapshot
func NewStateResponse(s ScreenState) StateResponse {
	return StateResponse{ScreenState: s, StatusKind: ClassifyStatus(s.Status)}
}
