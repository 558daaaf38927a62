package apperr

import (
	"fmt"
	"net/http"
)

// Error codes returned in the response envelope.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeMissingField       = "MISSING_FIELD"
	CodeMaxAllowedWords    = "MAX_ALLOWED_WORDS"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodePasswordMismatch   = "PASSWORD_MISMATCH"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeExpiredToken       = "EXPIRED_TOKEN"
	CodeNotAllowed         = "NOT_ALLOWED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeIntegrityError     = "INTEGRITY_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeRateLimited        = "RATE_LIMITED"
)

// Error is a typed domain error. Services return these and the HTTP boundary
// translates them into the response envelope; raw driver errors never reach
// the client.
type Error struct {
	Code    string
	Message string
	Field   string
	Status  int
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New builds an arbitrary typed error. Prefer the named constructors below.
func New(status int, code, field, message string) *Error {
	return &Error{Code: code, Message: message, Field: field, Status: status}
}

func DuplicateEmail(email string) *Error {
	return &Error{
		Code:    CodeDuplicateEmail,
		Message: fmt.Sprintf("Email %s is already registered", email),
		Field:   "email",
		Status:  http.StatusBadRequest,
	}
}

func InvalidCredentials() *Error {
	return &Error{
		Code:    CodeInvalidCredentials,
		Message: "Invalid email or password",
		Status:  http.StatusUnauthorized,
	}
}

func InvalidToken(message string) *Error {
	if message == "" {
		message = "Invalid or malformed token"
	}
	return &Error{
		Code:    CodeInvalidToken,
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

func ExpiredToken() *Error {
	return &Error{
		Code:    CodeExpiredToken,
		Message: "Token has expired",
		Status:  http.StatusUnauthorized,
	}
}

func NotAllowed(message string) *Error {
	if message == "" {
		message = "Operation not allowed"
	}
	return &Error{
		Code:    CodeNotAllowed,
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

func UserNotFound() *Error {
	return &Error{
		Code:    CodeUserNotFound,
		Message: "User not found",
		Status:  http.StatusNotFound,
	}
}

func Integrity(message string) *Error {
	return &Error{
		Code:    CodeIntegrityError,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func Internal() *Error {
	return &Error{
		Code:    CodeInternalError,
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
	}
}
