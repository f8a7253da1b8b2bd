package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies every failure the core can surface.
type Kind int

const (
	// KindInternal covers storage outages, programming defects and anything unrecognized.
	KindInternal Kind = iota
	// KindValidation means the payload failed schema or cross-field rules.
	KindValidation
	// KindBadRequest is validation-equivalent: malformed transport input or a
	// reference to a record that does not exist.
	KindBadRequest
	// KindNotFound means the identifier does not match a live row.
	KindNotFound
	// KindConflict means a uniqueness constraint would be violated.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Code is the stable machine-readable identifier of the kind.
func (k Kind) Code() string {
	switch k {
	case KindValidation:
		return "VALIDATION_FAILED"
	case KindBadRequest:
		return "BAD_REQUEST"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}

// Severity tells whether the caller or the server is at fault.
type Severity string

const (
	SeverityClient Severity = "client"
	SeverityServer Severity = "server"
)

// Severity is independent of any wire protocol.
func (k Kind) Severity() Severity {
	if k == KindInternal {
		return SeverityServer
	}
	return SeverityClient
}

// Issue is one (field path, message) pair of a validation failure.
// An empty Path refers to the payload as a whole.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Stable caller-facing messages.
const (
	MsgValidationFailed  = "Validation failed"
	MsgNotFound          = "Resource not found"
	MsgConflict          = "Resource conflict"
	MsgInvalidRelation   = "Invalid relation reference"
	MsgInvalidRequest    = "Invalid request"
	MsgInternal          = "Internal server error"
	MsgInvalidIdentifier = "Invalid identifier provided"
	MsgInvalidJSON       = "Request body must be valid JSON"
)

// AppError is the single error type returned by services and repositories.
type AppError struct {
	Kind    Kind
	Message string
	Details any
	Err     error

	sentinel bool
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNotFound) and friends match any AppError of the same kind.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || !t.sentinel {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrValidation = &AppError{Kind: KindValidation, Message: MsgValidationFailed, sentinel: true}
	ErrBadRequest = &AppError{Kind: KindBadRequest, Message: MsgInvalidRequest, sentinel: true}
	ErrNotFound   = &AppError{Kind: KindNotFound, Message: MsgNotFound, sentinel: true}
	ErrConflict   = &AppError{Kind: KindConflict, Message: MsgConflict, sentinel: true}
	ErrInternal   = &AppError{Kind: KindInternal, Message: MsgInternal, sentinel: true}

	// ErrDuplicate indicates an attempt to create a resource that already exists.
	ErrDuplicate = ErrConflict
)

// NewValidationError builds a ValidationError carrying the given issues as details.
func NewValidationError(issues ...Issue) *AppError {
	return &AppError{Kind: KindValidation, Message: MsgValidationFailed, Details: issues}
}

// NewBadRequestError builds a BadRequestError. An empty message falls back to MsgInvalidRequest.
func NewBadRequestError(message string, details any) *AppError {
	if message == "" {
		message = MsgInvalidRequest
	}
	return &AppError{Kind: KindBadRequest, Message: message, Details: details}
}

// NewInvalidRelationError is the BadRequestError used for dangling references.
func NewInvalidRelationError(field string, id int64) *AppError {
	return NewBadRequestError(MsgInvalidRelation, map[string]any{"field": field, "id": id})
}

// NewNotFoundError builds a NotFoundError. An empty message falls back to MsgNotFound.
func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = MsgNotFound
	}
	return &AppError{Kind: KindNotFound, Message: message}
}

// NewConflictError builds a ConflictError.
func NewConflictError(message string, details any) *AppError {
	if message == "" {
		message = MsgConflict
	}
	return &AppError{Kind: KindConflict, Message: message, Details: details}
}

// NewInternalError wraps an unrecognized failure. The cause is kept for logging only.
func NewInternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: MsgInternal, Err: err}
}

// AsAppError returns err as an *AppError, classifying anything else as internal.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err)
}

// KindOf reports the kind of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Issues returns the validation issues carried by err, if any.
func Issues(err error) []Issue {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return nil
	}
	issues, _ := appErr.Details.([]Issue)
	return issues
}

// HTTPStatus maps an error kind to the status code the transport layer should use.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
