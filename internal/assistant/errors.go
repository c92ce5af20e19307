// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"errors"
	"fmt"
)

// Error variables for assistant failures.
var (
	// ErrMalformedResponse indicates the reply body was not a JSON object
	// carrying a string "response" field.
	ErrMalformedResponse = errors.New("malformed assistant response")

	// ErrResponseTooLarge indicates the reply body exceeded MaxResponseSize.
	ErrResponseTooLarge = errors.New("assistant response too large")

	// errTransport marks failures that happened before a status code was read.
	errTransport = errors.New("transport failure")
)

// StatusError represents a non-2xx reply from the assistant.
type StatusError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("assistant returned HTTP %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("assistant returned HTTP %d", e.Status)
}

// IsStatus reports whether err carries a non-2xx status and returns it.
func IsStatus(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}

// IsMalformed reports whether err is a response decoding failure.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

// IsTransport reports whether err is a network level failure.
func IsTransport(err error) bool {
	return errors.Is(err, errTransport)
}

// Kind returns a short label for err, used as a structured log field.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case IsTransport(err):
		return "transport"
	case IsMalformed(err):
		return "malformed"
	default:
		if _, ok := IsStatus(err); ok {
			return "status"
		}
		return "unknown"
	}
}
