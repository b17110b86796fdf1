package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code, so wrapped errors created with
// NewDomainError compare equal to the sentinel values below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound     = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "Invalid input provided")

	ErrInvalidMoney         = NewDomainError("INVALID_MONEY", "Monetary amount violates its invariants")
	ErrCurrencyMismatch     = NewDomainError("CURRENCY_MISMATCH", "Monetary amounts have different currencies")
	ErrInvalidCoordinate    = NewDomainError("INVALID_COORDINATE", "Geographic coordinate is out of range")
	ErrInvalidAddress       = NewDomainError("INVALID_ADDRESS", "Postal address is missing required fields")
	ErrInvalidProduct       = NewDomainError("INVALID_PRODUCT", "Product is missing required fields")
	ErrIdentityConflict     = NewDomainError("IDENTITY_CONFLICT", "Identifier is already registered under a different kind")
	ErrUnknownIdentity      = NewDomainError("UNKNOWN_IDENTITY", "Identifier is not registered")
	ErrAmbiguousLegalEntity = NewDomainError("AMBIGUOUS_LEGAL_ENTITY", "Reference does not resolve to a person or a company")
)
