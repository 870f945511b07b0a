package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced by the translation core. The HTTP layer maps these to
// transport status codes; nothing below the handlers knows about fiber.
const (
	CodeMappingNotFound      = "MAPPING_NOT_FOUND"
	CodeInvalidUser          = "INVALID_USER"
	CodeInvalidTicketPayload = "INVALID_TICKET_PAYLOAD"
	CodeUserResolutionFailed = "USER_RESOLUTION_FAILED"
	CodeTicketNotFound       = "TICKET_NOT_FOUND"
	CodeRecordNotFound       = "RECORD_NOT_FOUND"
	CodeBackendError         = "BACKEND_ERROR"
	CodeBackendTimeout       = "BACKEND_TIMEOUT"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// HasCode reports whether err is a DomainError carrying the given code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

func NewMappingNotFound(table string, key any) error {
	return &DomainError{
		Code:       CodeMappingNotFound,
		Message:    fmt.Sprintf("no %s mapping for %v", table, key),
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"table": table, "key": fmt.Sprintf("%v", key)},
	}
}

func NewInvalidUser(message string) error {
	return NewDomainError(CodeInvalidUser, message, http.StatusBadRequest, nil)
}

func NewInvalidTicketPayload(message string) error {
	return NewDomainError(CodeInvalidTicketPayload, message, http.StatusBadRequest, nil)
}

func NewUserResolutionFailed(err error) error {
	return &DomainError{
		Code:       CodeUserResolutionFailed,
		Message:    "could not resolve a requester for the ticket",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewTicketNotFound(ticketID int) error {
	return &DomainError{
		Code:       CodeTicketNotFound,
		Message:    fmt.Sprintf("ticket %d not found", ticketID),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"ticket_id": ticketID},
	}
}

// NewRecordNotFound reports a backend 404 before the orchestrator has
// translated it into an operation-specific kind.
func NewRecordNotFound(path string) error {
	return &DomainError{
		Code:       CodeRecordNotFound,
		Message:    fmt.Sprintf("backend has no record at %s", path),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"path": path},
	}
}

func NewBackendError(message string, err error) error {
	return &DomainError{
		Code:       CodeBackendError,
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewBackendTimeout(err error) error {
	return &DomainError{
		Code:       CodeBackendTimeout,
		Message:    "backend call aborted by deadline",
		HTTPStatus: http.StatusGatewayTimeout,
		Err:        err,
	}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// CommentError reports a partial success: the ticket round trip committed but
// the follow-up Actions call for its comment did not. Callers get the ticket
// id so they can tell "nothing happened" apart from "ticket exists, comment
// missing".
type CommentError struct {
	TicketID int
	Err      error
}

func (e *CommentError) Error() string {
	return fmt.Sprintf("ticket %d saved but its comment was not: %v", e.TicketID, e.Err)
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
