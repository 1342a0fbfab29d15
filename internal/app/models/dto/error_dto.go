package dto

// ErrorCode is a stable machine-readable identifier returned alongside every
// error payload so clients can branch without parsing messages.
type ErrorCode string

const (
	// Authentication and authorization
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeTokenExpired       ErrorCode = "AUTH_002"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_003"
	ErrorCodeForbidden          ErrorCode = "AUTH_004"
	ErrorCodeEmailNotVerified   ErrorCode = "AUTH_005"
	ErrorCodeInvalidOTP         ErrorCode = "AUTH_006"

	// Resources
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeResourceExists   ErrorCode = "RES_002"
	ErrorCodeConflict         ErrorCode = "RES_003"

	// Validation
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server
	ErrorCodeInternalError ErrorCode = "SRV_001"
)

// ErrorSeverity hints how a client should surface the error.
type ErrorSeverity string

const (
	SeverityWarning ErrorSeverity = "warning"
	SeverityError   ErrorSeverity = "error"
)

// ErrorDetail is the error body embedded in APIResponse.
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"RES_001"`
	Message  string        `json:"message" example:"Resource not found"`
	Severity ErrorSeverity `json:"severity" example:"error"`
	Details  interface{}   `json:"details,omitempty"`
}

// NewErrorDetail builds an ErrorDetail with error severity.
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message, Severity: SeverityError}
}

// WithDetails attaches structured context, typically field validation errors.
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// ValidationFieldError describes a single failed binding rule.
type ValidationFieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"must be a valid email address"`
}
