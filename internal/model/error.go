package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// MessageResponse is the body the auth gates and status endpoints reply with.
type MessageResponse struct {
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeInvalidID         = "INVALID_ID"
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeEmptyItemList     = "EMPTY_ITEM_LIST"
	ErrCodeInvalidPrice      = "INVALID_PRICE"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInternalError     = "INTERNAL_ERROR"
	ErrCodeUpstreamFailure   = "UPSTREAM_FAILURE"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeReservationFailed = "RESERVATION_FAILED"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
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
	ErrInvalidID      = NewDomainError(ErrCodeInvalidID, "One or more ids are malformed")
	ErrInvalidInput   = NewDomainError(ErrCodeInvalidInput, "Request body is invalid")
	ErrEmailRequired  = NewDomainError(ErrCodeMissingField, "Email is required")
	ErrEmptyItemList  = NewDomainError(ErrCodeEmptyItemList, "At least one item id is required")
	ErrInvalidPrice   = NewDomainError(ErrCodeInvalidPrice, "Price must be a positive amount")
	ErrRecaptchaEmpty = NewDomainError(ErrCodeMissingField, "reCAPTCHA value is required")
)
