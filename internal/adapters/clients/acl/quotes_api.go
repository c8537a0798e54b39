// Package acl is the anti-corruption layer between the tool adapter and
// a remotely deployed quotes API. It translates HTTP wire shapes and
// transport failures into domain types and domain errors, so callers
// never see status codes or JSON envelopes.
package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jsamuelsen/futurama-quotes/internal/domain"
	"github.com/jsamuelsen/futurama-quotes/internal/ports"
)

// serviceName identifies the downstream in logs and domain errors.
const serviceName = "quotes-api"

// maxErrorBodySize caps how much of an error response body is read.
const maxErrorBodySize = 64 << 10 // 64KB

// HTTPDoer is the subset of the instrumented client the adapter needs.
type HTTPDoer interface {
	Get(ctx context.Context, path string) (*http.Response, error)
	Post(ctx context.Context, path string, body io.Reader) (*http.Response, error)
	Put(ctx context.Context, path string, body io.Reader) (*http.Response, error)
	Delete(ctx context.Context, path string) (*http.Response, error)
}

// QuotesAPIClient implements ports.QuoteAPI against a running quotes API
// over HTTP. It also implements ports.HealthChecker so the MCP server
// can report downstream reachability.
type QuotesAPIClient struct {
	http HTTPDoer
}

// NewQuotesAPIClient creates a remote quotes API adapter.
func NewQuotesAPIClient(httpClient HTTPDoer) *QuotesAPIClient {
	return &QuotesAPIClient{http: httpClient}
}

// Wire shapes for the quotes API. These mirror the HTTP DTOs but are
// kept separate: the wire contract belongs to the downstream, not to us.
type wireQuote struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Character string    `json:"character"`
	Episode   string    `json:"episode"`
	Season    *int      `json:"season,omitempty"`
	Year      *int      `json:"year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type wireQuoteList struct {
	Count  int         `json:"count"`
	Quotes []wireQuote `json:"quotes"`
}

type wireError struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type wireHealth struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type wireQuoteBody struct {
	Text      *string `json:"text,omitempty"`
	Character *string `json:"character,omitempty"`
	Episode   *string `json:"episode,omitempty"`
	Season    *int    `json:"season,omitempty"`
	Year      *int    `json:"year,omitempty"`
}

func toDomain(w *wireQuote) *domain.Quote {
	return &domain.Quote{
		ID:        w.ID,
		Text:      w.Text,
		Character: w.Character,
		Episode:   w.Episode,
		Season:    w.Season,
		Year:      w.Year,
		CreatedAt: w.CreatedAt,
	}
}

// ListQuotes fetches all quotes from the API.
func (c *QuotesAPIClient) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	resp, err := c.http.Get(ctx, "/api/v1/quotes")
	if err != nil {
		return nil, transportError(err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp, 0)
	}

	var list wireQuoteList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding quote list: %w", err)
	}

	quotes := make([]domain.Quote, 0, len(list.Quotes))
	for i := range list.Quotes {
		quotes = append(quotes, *toDomain(&list.Quotes[i]))
	}

	return quotes, nil
}

// GetQuote fetches a single quote by id.
func (c *QuotesAPIClient) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	resp, err := c.http.Get(ctx, fmt.Sprintf("/api/v1/quotes/%d", id))
	if err != nil {
		return nil, transportError(err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp, id)
	}

	return decodeQuote(resp)
}

// CreateQuote creates a new quote via the API.
func (c *QuotesAPIClient) CreateQuote(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error) {
	body, err := json.Marshal(wireQuoteBody{
		Text:      &draft.Text,
		Character: &draft.Character,
		Episode:   &draft.Episode,
		Season:    draft.Season,
		Year:      draft.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding quote draft: %w", err)
	}

	resp, err := c.http.Post(ctx, "/api/v1/quotes", bytes.NewReader(body))
	if err != nil {
		return nil, transportError(err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp, 0)
	}

	return decodeQuote(resp)
}

// UpdateQuote applies a partial update via the API.
func (c *QuotesAPIClient) UpdateQuote(ctx context.Context, id int64, update domain.QuoteUpdate) (*domain.Quote, error) {
	body, err := json.Marshal(wireQuoteBody{
		Text:      update.Text,
		Character: update.Character,
		Episode:   update.Episode,
		Season:    update.Season,
		Year:      update.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding quote update: %w", err)
	}

	resp, err := c.http.Put(ctx, fmt.Sprintf("/api/v1/quotes/%d", id), bytes.NewReader(body))
	if err != nil {
		return nil, transportError(err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp, id)
	}

	return decodeQuote(resp)
}

// DeleteQuote removes a quote via the API.
func (c *QuotesAPIClient) DeleteQuote(ctx context.Context, id int64) error {
	resp, err := c.http.Delete(ctx, fmt.Sprintf("/api/v1/quotes/%d", id))
	if err != nil {
		return transportError(err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp, id)
	}

	return nil
}

// CheckHealth queries the API's legacy health endpoint.
func (c *QuotesAPIClient) CheckHealth(ctx context.Context) (*ports.APIStatus, error) {
	resp, err := c.http.Get(ctx, "/health")
	if err != nil {
		return nil, transportError(err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUnavailableError(serviceName,
			fmt.Sprintf("health endpoint returned HTTP %d", resp.StatusCode))
	}

	var health wireHealth
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decoding health response: %w", err)
	}

	return &ports.APIStatus{
		Status:  health.Status,
		Message: health.Message,
	}, nil
}

// Name implements ports.HealthChecker.
func (c *QuotesAPIClient) Name() string { return serviceName }

// Check implements ports.HealthChecker by probing the health endpoint.
func (c *QuotesAPIClient) Check(ctx context.Context) error {
	_, err := c.CheckHealth(ctx)
	return err
}

// decodeQuote reads a single quote from a successful response.
func decodeQuote(resp *http.Response) (*domain.Quote, error) {
	var w wireQuote
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, fmt.Errorf("decoding quote: %w", err)
	}

	return toDomain(&w), nil
}

// decodeError translates a non-2xx response into a domain error.
// The API's error envelope is consulted for the message; the status
// code decides the error kind.
func decodeError(resp *http.Response, id int64) error {
	var envelope wireError

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if readErr == nil {
		_ = json.Unmarshal(body, &envelope)
	}

	message := envelope.Error.Message

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.NewNotFoundError("quote", id)

	case http.StatusBadRequest:
		for field, detail := range envelope.Error.Details {
			return domain.NewValidationError(field, detail)
		}
		if message == "" {
			message = "request rejected by quotes API"
		}
		return domain.NewValidationError("", message)

	case http.StatusServiceUnavailable:
		if message == "" {
			message = "quotes API reported unavailable"
		}
		return domain.NewUnavailableError(serviceName, message)

	default:
		if message == "" {
			message = fmt.Sprintf("unexpected HTTP %d", resp.StatusCode)
		}
		return domain.NewUnavailableError(serviceName, message)
	}
}

// transportError wraps client-layer failures as domain unavailability.
func transportError(err error) error {
	return domain.NewUnavailableError(serviceName, err.Error())
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	_ = resp.Body.Close()
}
