package api

// ContactResponse acknowledges a relayed inquiry.
type ContactResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse carries the user-facing message for a failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
