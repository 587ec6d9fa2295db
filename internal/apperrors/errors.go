package apperrors

import (
	"errors"
	"strings"
)

// Category sentinels. Every error crossing the service boundary matches exactly
// one of them through errors.Is; the HTTP layer maps categories to status codes.

// ErrNotFound indicates that a requested resource could not be found or is inactive.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that a request broke a business rule.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMalformedInput indicates that the request body could not be decoded.
var ErrMalformedInput = errors.New("malformed input")

// ErrFieldValidation indicates schema or constraint violations on individual fields.
var ErrFieldValidation = errors.New("field validation failed")

// ErrUnavailable indicates that a downstream dependency could not be reached.
var ErrUnavailable = errors.New("service unavailable")

// Specific business-rule sentinels.
var (
	ErrInvalidTransactionType  = errors.New("invalid transaction type")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrDuplicateAccountNumber  = errors.New("duplicate account number")
	ErrInvalidCustomer         = errors.New("invalid customer")
	ErrDuplicateIdentification = errors.New("duplicate identification")
	ErrConcurrentUpdate        = errors.New("concurrent update")
	ErrPersonInUse             = errors.New("person in use")
)

// AppError carries a client-facing message, the category it belongs to and
// an optional cause.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

// NewAppError builds an AppError of the given category.
func NewAppError(kind error, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the category and the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NotFound returns a NotFound error with the given message.
func NotFound(message string) error {
	return NewAppError(ErrNotFound, message, nil)
}

// Validation returns a business-rule violation caused by the given specific sentinel.
func Validation(cause error, message string) error {
	return NewAppError(ErrValidation, message, cause)
}

// Unavailable wraps a downstream failure.
func Unavailable(message string, err error) error {
	return NewAppError(ErrUnavailable, message, err)
}

// Message returns the client-facing message of err, falling back to err.Error().
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// FieldErrors is a list of field violations reported together.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	return strings.Join(fe.Details(), "; ")
}

// Is makes FieldErrors match ErrFieldValidation.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrFieldValidation
}

// Details renders one "field: message" line per violation.
func (fe FieldErrors) Details() []string {
	details := make([]string, len(fe))
	for i, f := range fe {
		details[i] = f.String()
	}
	return details
}
