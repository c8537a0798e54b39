// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application
// layer to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrValidation, ...)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/futurama-quotes/internal/domain"
)

// QuoteRepository is the collection store owning the id -> Quote mapping.
// The in-memory adapter is the only implementation; it serializes
// mutation and allows concurrent reads.
type QuoteRepository interface {
	// List returns all quotes in insertion order. Never fails on an
	// empty store; an empty store yields an empty slice.
	List(ctx context.Context) ([]domain.Quote, error)

	// Get returns the quote with the given id.
	// Returns domain.ErrNotFound if no such id exists.
	Get(ctx context.Context, id int64) (*domain.Quote, error)

	// Create validates the draft, allocates the next id, stamps
	// CreatedAt and inserts. Returns domain.ErrValidation if a
	// required field is empty.
	Create(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error)

	// Update applies a partial update to an existing quote.
	// Returns domain.ErrNotFound if the id is absent and
	// domain.ErrValidation if a supplied field is empty. Either all
	// supplied fields are applied or none.
	Update(ctx context.Context, id int64, update domain.QuoteUpdate) (*domain.Quote, error)

	// Delete removes the quote permanently. Other ids are unaffected
	// and the deleted id is never reused.
	// Returns domain.ErrNotFound if the id is absent.
	Delete(ctx context.Context, id int64) error
}

// APIStatus is the liveness payload reported by the quotes API.
type APIStatus struct {
	Status  string
	Message string
}

// QuoteAPI is the full operation surface the tool adapter calls.
// It is implemented in-process by the application service and remotely
// by the HTTP client adapter, so the MCP server can run either embedded
// or against a separately deployed API.
type QuoteAPI interface {
	ListQuotes(ctx context.Context) ([]domain.Quote, error)
	GetQuote(ctx context.Context, id int64) (*domain.Quote, error)
	CreateQuote(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error)
	UpdateQuote(ctx context.Context, id int64, update domain.QuoteUpdate) (*domain.Quote, error)
	DeleteQuote(ctx context.Context, id int64) error

	// CheckHealth reports liveness. The in-process implementation
	// always succeeds; the remote one fails with domain.ErrUnavailable
	// when the API cannot be reached.
	CheckHealth(ctx context.Context) (*APIStatus, error)
}
