package validation

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyURL            = errors.New("url is required")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrURLTooLong          = errors.New("url exceeds maximum length")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
	ErrBatchTooLarge       = errors.New("batch size exceeds maximum")
	ErrEmptyBatch          = errors.New("urls is required")
)

// ItemError is the rejection of one URL in a batch.
type ItemError struct {
	Index int
	Err   error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("urls[%d]: %v", e.Index, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// BatchError lists every rejected URL of a batch in index order. errors.Is
// matches any of the item causes.
type BatchError struct {
	Items []ItemError
}

func (e *BatchError) Error() string {
	if len(e.Items) == 1 {
		return "batch validation failed: " + e.Items[0].Error()
	}
	return fmt.Sprintf("batch validation failed: %d invalid urls", len(e.Items))
}

func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Items))
	for i, item := range e.Items {
		errs[i] = item
	}
	return errs
}
