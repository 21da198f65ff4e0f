package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUpstream           = errors.New("upstream error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrValidation         = errors.New("validation error")
)

// UpstreamError reports a failed call to an upstream API. Status is the HTTP
// status of the response, or 0 when no response was received.
type UpstreamError struct {
	Source string
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s upstream failed: %s", e.Source, e.Detail)
	}
	return fmt.Sprintf("%s upstream failed with status %d: %s", e.Source, e.Status, e.Detail)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid enquiry field %q: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
