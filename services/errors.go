package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all services. Controllers map these onto
// HTTP status codes; nothing else inspects error strings.
var (
	ErrUnauthorized = errors.New("unauthorized: admin access required")
	ErrNotFound     = errors.New("record not found")
)

// ValidationError reports malformed or incomplete input, naming the
// offending field. Detected before any write happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StorageError wraps an unexpected failure from the database layer.
// The cause stays reachable through errors.Unwrap for logging.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
