package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals missing persisted state, such as chunk metadata
	// before any ingestion run, or a missing source document.
	ErrNotFound = errors.New("not found")

	// ErrEmptyInput signals a blank question or an empty document.
	ErrEmptyInput = errors.New("empty input")
)

// ConfigError reports an invalid or inconsistent configuration, such as an
// embedding dimension that does not match the remote index.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Msg
}

// RemoteError reports a non-success response from the vector index.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("vector index returned status %d: %s", e.Status, e.Body)
}

// DecodeError reports a malformed search response payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode search response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
