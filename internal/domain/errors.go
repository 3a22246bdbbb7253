package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateFile   = errors.New("file has already been ingested")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrMissingColumns  = errors.New("missing required columns")
	ErrMalformedFile   = errors.New("malformed file")
)

// ValidationError rejects a single row. Row is 1-based, header excluded.
type ValidationError struct {
	Row   int
	Field string
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// StoreError is a persistence failure during ingestion. Batches committed before
// the failure stay in the store.
type StoreError struct {
	Op               string
	CommittedBatches int
	Err              error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s (committed batches: %d): %s", e.Op, e.CommittedBatches, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate document: %s", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver to %q: %s", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
