package valhalla

import "fmt"

// APIError is the structured error body a Valhalla-compatible server returns
// alongside a non-2xx status, e.g.
// {"error_code":171,"error":"No suitable edges near location","status_code":400,"status":"Bad Request"}.
type APIError struct {
	ErrorCode  int    `json:"error_code"`
	Message    string `json:"error"`
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("valhalla: %s (code %d, http %d %s)", e.Message, e.ErrorCode, e.StatusCode, e.Status)
}

// Temporary reports whether the error is worth retrying: server-side
// failures may clear, client-side request errors never do.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500
}
