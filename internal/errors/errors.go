package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = errors.New("Invalid request body")
	// ErrMissingFields is returned when a required field is absent.
	ErrMissingFields = errors.New("Missing required fields")
	// ErrPasswordTooLong is returned when a password exceeds bcrypt's 72-byte input limit.
	ErrPasswordTooLong = errors.New("Password must be at most 72 bytes long")
	// ErrUsernameTaken is returned when a username is already registered.
	ErrUsernameTaken = errors.New("Username already exists")
	// ErrInvalidCredentials is returned for an unknown username or a wrong password alike.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrMissingToken is returned when a protected route is called without a bearer token.
	ErrMissingToken = errors.New("Missing authorization token")
	// ErrInvalidToken is returned when a token is malformed or its signature does not match.
	ErrInvalidToken = errors.New("Invalid token")
	// ErrExpiredToken is returned when a token is past its expiry.
	ErrExpiredToken = errors.New("Token has expired")
	// ErrRevokedToken is returned when a token was revoked by logout.
	ErrRevokedToken = errors.New("Token has been revoked")
	// ErrForbidden is returned when the token identity does not own the resource.
	ErrForbidden = errors.New("Unauthorized")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("Product not found")
	// ErrNotFound is returned for unknown routes.
	ErrNotFound = errors.New("Not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

var statusByErr = []struct {
	err    error
	status int
}{
	{ErrInvalidBody, http.StatusBadRequest},
	{ErrMissingFields, http.StatusBadRequest},
	{ErrPasswordTooLong, http.StatusBadRequest},
	{ErrUsernameTaken, http.StatusBadRequest},
	{ErrInvalidCredentials, http.StatusUnauthorized},
	{ErrMissingToken, http.StatusUnauthorized},
	{ErrInvalidToken, http.StatusUnauthorized},
	{ErrExpiredToken, http.StatusUnauthorized},
	{ErrRevokedToken, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrUserNotFound, http.StatusNotFound},
	{ErrProductNotFound, http.StatusNotFound},
	{ErrNotFound, http.StatusNotFound},
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognised
// becomes a generic 500 so datastore details never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	for _, m := range statusByErr {
		if errors.Is(err, m.err) {
			return NewHTTPError(m.status, m.err.Error())
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "Internal server error")
}
