package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/fairychess/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidMode     = "INVALID_MODE"
	CodeInvalidStrategy = "INVALID_STRATEGY"
	CodeInvalidName     = "INVALID_NAME"
	CodeInvalidSquare   = "INVALID_SQUARE"
	CodeGameNotFound    = "GAME_NOT_FOUND"
	CodeTooManyGames    = "TOO_MANY_GAMES"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrInvalidMode):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMode, err.Error()}}
	case errors.Is(err, model.ErrInvalidStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidStrategy, err.Error()}}
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "Game name is too long"}}
	case errors.Is(err, model.ErrInvalidSquare):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSquare, err.Error()}}
	case errors.Is(err, model.ErrTooManyGames):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeTooManyGames, "Too many games are being hosted"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// NewPanicError is the internal error sent when a handler panicked. It quotes
// the request id so the response can be matched to the logged stack.
func NewPanicError(requestID string) error {
	msg := "Internal server error"
	if requestID != "" {
		msg += " (request " + requestID + ")"
	}
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, msg}}
}
