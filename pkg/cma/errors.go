package cma

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/benomatis/contentful-management/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrEndpointRequired    = errors.New("endpoint is required")
	ErrAccessTokenRequired = errors.New("access token is required")
	ErrNoDispatcher        = errors.New("entity has no dispatcher attached")
	ErrUnknownEntityType   = errors.New("unknown entity type")
	ErrUnknownAction       = errors.New("unknown action")
)

// MalformedEntityError indicates raw server data that cannot be wrapped:
// unparseable JSON or a sys block missing the required identifying fields.
type MalformedEntityError struct {
	EntityType string
	Reason     string
}

// Error implements the error interface.
func (e *MalformedEntityError) Error() string {
	if e.EntityType == "" {
		return fmt.Sprintf("malformed entity: %s", e.Reason)
	}

	return fmt.Sprintf("malformed %s entity: %s", e.EntityType, e.Reason)
}

// AssetProcessingTimeoutError indicates the processing poll exhausted its
// retry budget. Processing may still complete server-side; the asset id
// and locales are carried so the caller can re-fetch and inspect.
type AssetProcessingTimeoutError struct {
	AssetID  string
	Locales  []string
	Attempts int
}

// Error implements the error interface.
func (e *AssetProcessingTimeoutError) Error() string {
	return fmt.Sprintf("asset %s did not finish processing for locale(s) %s after %d checks",
		e.AssetID, strings.Join(e.Locales, ", "), e.Attempts)
}

// ValidationError indicates a structured argument that is missing or
// invalid. It is raised synchronously, before any dispatch call.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// APIError represents an error response from the management API. The
// entity layer propagates these unchanged; it never interprets them.
type APIError struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	ID         string `json:"id"         yaml:"id"`
	Message    string `json:"message"    yaml:"message"`
	RequestID  string `json:"requestId"  yaml:"requestId"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s: %s (status: %d, request: %s)", e.ID, e.Message, e.StatusCode, e.RequestID)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.ID, e.Message, e.StatusCode)
}

// ParseAPIError decodes an error response body into an APIError. The
// management API wraps error details in a sys block with type "Error".
func ParseAPIError(statusCode int, body []byte) *APIError {
	var parsed struct {
		Sys struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"sys"`
		Message   string `json:"message"`
		RequestID string `json:"requestId"`
	}

	apiErr := &APIError{StatusCode: statusCode}

	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.ID = parsed.Sys.ID
		apiErr.Message = parsed.Message
		apiErr.RequestID = parsed.RequestID
	}

	if apiErr.ID == "" {
		apiErr.ID = http.StatusText(statusCode)
	}

	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	return apiErr
}

// hasErrorID reports whether err is an APIError with the given sys id or
// HTTP status.
func hasErrorID(err error, id string, statusCode int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.ID == id || apiErr.StatusCode == statusCode
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasErrorID(err, constants.ErrorIDNotFound, http.StatusNotFound)
}

// IsVersionMismatch checks if the error is an optimistic-concurrency
// conflict. Two concurrent updates on wrapped copies of the same id are
// resolved only by the server's version check; the conflict is surfaced,
// never silently resolved.
func IsVersionMismatch(err error) bool {
	return hasErrorID(err, constants.ErrorIDVersionMismatch, http.StatusConflict)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return hasErrorID(err, constants.ErrorIDRateLimitExceeded, http.StatusTooManyRequests)
}

// IsValidationFailed checks if the error is a server-side validation error.
func IsValidationFailed(err error) bool {
	return hasErrorID(err, constants.ErrorIDValidationFailed, http.StatusUnprocessableEntity)
}

// IsUnauthorized checks if the error is an invalid-token error.
func IsUnauthorized(err error) bool {
	return hasErrorID(err, constants.ErrorIDAccessTokenInvalid, http.StatusUnauthorized)
}
