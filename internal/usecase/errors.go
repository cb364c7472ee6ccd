package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthenticated     = errors.New("login required")
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("not the owner")
	ErrDuplicate           = errors.New("duplicate idempotency key")
	ErrDuplicateCode       = errors.New("duplicate order code")
	ErrOrderCreationFailed = errors.New("order creation failed")
	ErrAmountMismatch      = errors.New("amount does not match cart total")
	ErrCancelNotAllowed    = errors.New("order can no longer be cancelled")
)

// FieldViolation is one boundary-validation failure, keyed by the
// request field name.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field violations so the handler can
// return them all at once instead of failing on the first.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldViolation{Field: field, Message: msg})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
