package dto

import "net/http"

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
)

// statusByDomainCode maps domain error codes to HTTP status codes.
// Validation failures are unprocessable entities: the request was
// well-formed but violates a domain invariant.
var statusByDomainCode = map[string]int{
	"INVALID_MONEY":          http.StatusUnprocessableEntity,
	"INVALID_COORDINATE":     http.StatusUnprocessableEntity,
	"INVALID_ADDRESS":        http.StatusUnprocessableEntity,
	"INVALID_PRODUCT":        http.StatusUnprocessableEntity,
	"INVALID_INPUT":          http.StatusUnprocessableEntity,
	"CURRENCY_MISMATCH":      http.StatusUnprocessableEntity,
	"AMBIGUOUS_LEGAL_ENTITY": http.StatusUnprocessableEntity,
	"UNKNOWN_IDENTITY":       http.StatusUnprocessableEntity,
	"IDENTITY_CONFLICT":      http.StatusConflict,
	"NOT_FOUND":              http.StatusNotFound,
}

// GetHTTPStatus returns the HTTP status code for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := statusByDomainCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
