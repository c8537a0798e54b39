// Package clients provides an instrumented HTTP client for downstream services.
package clients

import "errors"

// Client errors represent infrastructure failures in the HTTP layer.
// Callers translate them to domain errors.
var (
	// ErrCircuitOpen is returned when the circuit breaker is open and
	// requests to the downstream are being blocked.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded is returned after all retry attempts have been
	// exhausted. The last attempt's error is wrapped for context.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
