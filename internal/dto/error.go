package dto

import "time"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message" example:"uri=/v1/accounts/123"`
	Details   []string  `json:"details"`
}

// NewErrorResponse builds an ErrorResponse for the request path.
func NewErrorResponse(path string, details ...string) ErrorResponse {
	if details == nil {
		details = []string{}
	}
	return ErrorResponse{
		Timestamp: time.Now().UTC(),
		Message:   "uri=" + path,
		Details:   details,
	}
}
