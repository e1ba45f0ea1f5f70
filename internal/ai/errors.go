package ai

import (
	"fmt"
	"strings"
)

// InputError reports a caller-supplied precondition violation. It is always
// raised before any model call is made.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// GatewayError reports a failed model call: network failure, non-success
// status, or a response without a usable completion. It is never retried.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// ParseError reports model output that is not syntactically valid JSON for an
// array-shaped contract.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model did not return valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports model output that parsed but violates the required-field
// contract. Missing holds the sorted missing field names for the offending
// element.
type SchemaError struct {
	Index   int
	Missing []string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("element at index %d missing fields: [%s]", e.Index, strings.Join(e.Missing, " "))
}
