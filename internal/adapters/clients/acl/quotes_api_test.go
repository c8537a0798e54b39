package acl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/futurama-quotes/internal/domain"
)

// plainDoer satisfies HTTPDoer with a bare http.Client, keeping these
// tests focused on translation rather than retry/circuit behavior.
type plainDoer struct {
	baseURL string
	client  *http.Client
}

func (d *plainDoer) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, d.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return d.client.Do(req)
}

func (d *plainDoer) Get(ctx context.Context, path string) (*http.Response, error) {
	return d.do(ctx, http.MethodGet, path, nil)
}

func (d *plainDoer) Post(ctx context.Context, path string, body io.Reader) (*http.Response, error) {
	return d.do(ctx, http.MethodPost, path, body)
}

func (d *plainDoer) Put(ctx context.Context, path string, body io.Reader) (*http.Response, error) {
	return d.do(ctx, http.MethodPut, path, body)
}

func (d *plainDoer) Delete(ctx context.Context, path string) (*http.Response, error) {
	return d.do(ctx, http.MethodDelete, path, nil)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *QuotesAPIClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewQuotesAPIClient(&plainDoer{baseURL: server.URL, client: server.Client()})
}

func TestQuotesAPIClient_ListQuotes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/quotes", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"count": 2,
			"quotes": [
				{"id":1,"text":"A","character":"Fry","episode":"E1","created_at":"2026-01-01T00:00:00Z"},
				{"id":2,"text":"B","character":"Leela","episode":"E2","season":3,"created_at":"2026-01-02T00:00:00Z"}
			]
		}`))
	})

	quotes, err := client.ListQuotes(t.Context())
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, int64(1), quotes[0].ID)
	assert.Equal(t, "Leela", quotes[1].Character)
	require.NotNil(t, quotes[1].Season)
	assert.Equal(t, 3, *quotes[1].Season)
}

func TestQuotesAPIClient_GetQuote_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"quote with id 99 not found"}}`))
	})

	_, err := client.GetQuote(t.Context(), 99)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "99")
}

func TestQuotesAPIClient_CreateQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Bender", body["character"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":5,"text":"X","character":"Bender","episode":"E","created_at":"2026-01-01T00:00:00Z"}`))
	})

	quote, err := client.CreateQuote(t.Context(), domain.QuoteDraft{
		Text: "X", Character: "Bender", Episode: "E",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), quote.ID)
}

func TestQuotesAPIClient_CreateQuote_ValidationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"VALIDATION_ERROR","message":"request validation failed","details":{"text":"must not be empty"}}}`))
	})

	_, err := client.CreateQuote(t.Context(), domain.QuoteDraft{Character: "Fry", Episode: "E"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "text", validationErr.Field)
}

func TestQuotesAPIClient_UpdateQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/quotes/3", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "New text", body["text"])
		assert.NotContains(t, body, "character", "absent fields must not be sent")

		_, _ = w.Write([]byte(`{"id":3,"text":"New text","character":"Fry","episode":"E","created_at":"2026-01-01T00:00:00Z"}`))
	})

	text := "New text"

	quote, err := client.UpdateQuote(t.Context(), 3, domain.QuoteUpdate{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "New text", quote.Text)
}

func TestQuotesAPIClient_DeleteQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte(`{"message":"Quote deleted successfully"}`))
	})

	assert.NoError(t, client.DeleteQuote(t.Context(), 1))
}

func TestQuotesAPIClient_CheckHealth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"healthy","message":"Futurama Quotes API is running"}`))
	})

	status, err := client.CheckHealth(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "Futurama Quotes API is running", status.Message)

	assert.NoError(t, client.Check(t.Context()))
	assert.Equal(t, "quotes-api", client.Name())
}

func TestQuotesAPIClient_TransportFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewQuotesAPIClient(&plainDoer{baseURL: server.URL, client: &http.Client{}})

	_, err := client.ListQuotes(t.Context())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))

	assert.Error(t, client.Check(t.Context()))
}
