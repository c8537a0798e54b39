// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/futurama-quotes/internal/domain"
	"github.com/jsamuelsen/futurama-quotes/internal/ports"
)

// QuoteService orchestrates quote-related use cases.
// It depends on the repository port, not a concrete store, and itself
// satisfies ports.QuoteAPI so the MCP adapter can call it directly
// when both components run in one process.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if Repository is nil. Defaults logger to slog.Default() if nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("QuoteService: Repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger,
	}
}

// ListQuotes returns all quotes in insertion order.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes", slog.Any("error", err))
		return nil, err
	}

	s.logger.DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// GetQuote retrieves a specific quote by its identifier.
func (s *QuoteService) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	quote, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to fetch quote",
			slog.Int64("quote_id", id),
			slog.Any("error", err),
		)

		return nil, err
	}

	return quote, nil
}

// CreateQuote validates the draft and inserts a new quote.
func (s *QuoteService) CreateQuote(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error) {
	quote, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to create quote", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "created quote",
		slog.Int64("quote_id", quote.ID),
		slog.String("character", quote.Character),
	)

	return quote, nil
}

// UpdateQuote applies a partial update to an existing quote.
func (s *QuoteService) UpdateQuote(ctx context.Context, id int64, update domain.QuoteUpdate) (*domain.Quote, error) {
	quote, err := s.repo.Update(ctx, id, update)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to update quote",
			slog.Int64("quote_id", id),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.logger.InfoContext(ctx, "updated quote", slog.Int64("quote_id", id))

	return quote, nil
}

// DeleteQuote removes a quote permanently.
func (s *QuoteService) DeleteQuote(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to delete quote",
			slog.Int64("quote_id", id),
			slog.Any("error", err),
		)

		return err
	}

	s.logger.InfoContext(ctx, "deleted quote", slog.Int64("quote_id", id))

	return nil
}

// CheckHealth reports liveness. The in-process store has no external
// dependencies, so this always succeeds.
func (s *QuoteService) CheckHealth(context.Context) (*ports.APIStatus, error) {
	return &ports.APIStatus{
		Status:  "healthy",
		Message: "Futurama Quotes API is running",
	}, nil
}
