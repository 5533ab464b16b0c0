package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	vhttp "github.com/erpbridge/odoorest/libs/http"
	"github.com/erpbridge/odoorest/odoo"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// StatusFromError maps the errors of the services to an HTTP status and the
// message shown to the client.
func StatusFromError(err error) (int, string) {
	var (
		remote *odoo.RemoteError
		record *odoo.RecordError
	)
	switch {
	case errors.Is(err, odoo.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, odoo.ErrAuthenticationFailed):
		return http.StatusUnauthorized, "Authentication failed"
	case errors.Is(err, vhttp.ErrRateLimited):
		return http.StatusTooManyRequests, err.Error()
	case errors.Is(err, odoo.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &record):
		return http.StatusBadRequest, record.Message
	case errors.As(err, &remote):
		return http.StatusBadRequest, remote.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, newErrorResponse(status, message))
}

// MarshalError renders the body of a failed request for handlers that
// write it themselves.
func MarshalError(status int, message string) ([]byte, error) {
	return json.Marshal(newErrorResponse(status, message))
}

func newErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	}
}

// WriteJSON renders data with the given status. A value that cannot be
// encoded, such as a NaN float read from Odoo, turns into a 500.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	buf, err := json.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		buf, _ = json.Marshal(newErrorResponse(status, "Internal server error"))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}
