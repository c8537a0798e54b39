// Package memory provides the in-memory quote store.
// It is the sole owner of the id -> Quote mapping: nothing else may
// mutate quotes directly. Data does not survive a restart by design.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/futurama-quotes/internal/domain"
)

// Store is an in-memory quote repository.
//
// All mutation (Create, Update, Delete) is serialized under the write
// lock; reads (List, Get) take the read lock and may run concurrently.
// IDs are allocated from a counter that only ever increases, so a
// deleted id is never handed out again.
type Store struct {
	mu     sync.RWMutex
	quotes map[int64]domain.Quote
	order  []int64
	nextID int64

	clock  func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Used by tests to pin CreatedAt.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates an empty store. The first created quote gets id 1.
func New(opts ...Option) *Store {
	s := &Store{
		quotes: make(map[int64]domain.Quote),
		nextID: 1,
		clock:  time.Now,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// List returns all quotes in insertion order.
// Implements ports.QuoteRepository.
func (s *Store) List(_ context.Context) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quotes := make([]domain.Quote, 0, len(s.order))
	for _, id := range s.order {
		quotes = append(quotes, s.quotes[id])
	}

	return quotes, nil
}

// Get returns the quote with the given id.
// Implements ports.QuoteRepository.
func (s *Store) Get(_ context.Context, id int64) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.quotes[id]
	if !ok {
		return nil, domain.NewNotFoundError("quote", id)
	}

	return &quote, nil
}

// Create validates the draft and inserts a new quote.
// Implements ports.QuoteRepository.
func (s *Store) Create(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	quote := domain.Quote{
		ID:        s.nextID,
		Text:      draft.Text,
		Character: draft.Character,
		Episode:   draft.Episode,
		Season:    draft.Season,
		Year:      draft.Year,
		CreatedAt: s.clock(),
	}

	s.quotes[quote.ID] = quote
	s.order = append(s.order, quote.ID)
	s.nextID++

	s.logger.InfoContext(ctx, "created quote",
		slog.Int64("quote_id", quote.ID),
		slog.String("character", quote.Character),
	)

	return &quote, nil
}

// Update applies a partial update to an existing quote.
// The update is validated before anything is touched, so a rejected
// update leaves the quote exactly as it was.
// Implements ports.QuoteRepository.
func (s *Store) Update(ctx context.Context, id int64, update domain.QuoteUpdate) (*domain.Quote, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.quotes[id]
	if !ok {
		return nil, domain.NewNotFoundError("quote", id)
	}

	updated := update.Apply(current)
	s.quotes[id] = updated

	s.logger.InfoContext(ctx, "updated quote", slog.Int64("quote_id", id))

	return &updated, nil
}

// Delete removes a quote permanently. The id counter is unaffected.
// Implements ports.QuoteRepository.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quotes[id]; !ok {
		return domain.NewNotFoundError("quote", id)
	}

	delete(s.quotes, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.logger.InfoContext(ctx, "deleted quote", slog.Int64("quote_id", id))

	return nil
}

// Len returns the number of quotes currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// Name returns the health check name for this store.
// Implements ports.HealthChecker.
func (s *Store) Name() string {
	return "quote-store"
}

// Check reports store health. The store is pure in-memory, so liveness
// of the process implies liveness of the store.
// Implements ports.HealthChecker.
func (s *Store) Check(context.Context) error {
	return nil
}
