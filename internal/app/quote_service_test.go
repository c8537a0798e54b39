package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/futurama-quotes/internal/adapters/storage/memory"
	"github.com/jsamuelsen/futurama-quotes/internal/domain"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService wires a service to a fresh in-memory store.
func newTestService(t *testing.T) *QuoteService {
	t.Helper()

	return NewQuoteService(QuoteServiceConfig{
		Repository: memory.New(memory.WithLogger(discardLogger())),
		Logger:     discardLogger(),
	})
}

func strPtr(v string) *string { return &v }

func TestNewQuoteService_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{
			Repository: nil,
			Logger:     slog.Default(),
		})
	})
}

func TestNewQuoteService_DefaultsLogger(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{
		Repository: memory.New(),
		Logger:     nil, // Should default to slog.Default()
	})

	require.NotNil(t, svc)
}

func TestQuoteService_CreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateQuote(ctx, domain.QuoteDraft{
		Text:      "Bite my shiny metal ass!",
		Character: "Bender",
		Episode:   "A Fishful of Dollars",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.GetQuote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestQuoteService_CreateValidationError(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateQuote(ctx, domain.QuoteDraft{
		Text:      "",
		Character: "Fry",
		Episode:   "Test",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	quotes, err := svc.ListQuotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestQuoteService_GetNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetQuote(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestQuoteService_UpdateAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateQuote(ctx, domain.QuoteDraft{
		Text:      "Good news everyone!",
		Character: "Professor Farnsworth",
		Episode:   "Various Episodes",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateQuote(ctx, created.ID, domain.QuoteUpdate{
		Character: strPtr("Hubert J. Farnsworth"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hubert J. Farnsworth", updated.Character)
	assert.Equal(t, created.Text, updated.Text)

	require.NoError(t, svc.DeleteQuote(ctx, created.ID))

	_, err = svc.GetQuote(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	err = svc.DeleteQuote(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestQuoteService_CheckHealth(t *testing.T) {
	svc := newTestService(t)

	status, err := svc.CheckHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.NotEmpty(t, status.Message)
}
