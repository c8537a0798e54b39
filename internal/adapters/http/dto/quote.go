package dto

import (
	"time"

	"github.com/jsamuelsen/futurama-quotes/internal/domain"
)

// QuoteResponse is the HTTP representation of a quote.
type QuoteResponse struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Character string    `json:"character"`
	Episode   string    `json:"episode"`
	Season    *int      `json:"season,omitempty"`
	Year      *int      `json:"year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToQuoteResponse converts a domain Quote to its HTTP representation.
func ToQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:        q.ID,
		Text:      q.Text,
		Character: q.Character,
		Episode:   q.Episode,
		Season:    q.Season,
		Year:      q.Year,
		CreatedAt: q.CreatedAt,
	}
}

// QuoteListResponse is the payload for listing quotes.
// Count is redundant with len(quotes) but kept for API compatibility
// with the original service.
type QuoteListResponse struct {
	Count  int              `json:"count"`
	Quotes []*QuoteResponse `json:"quotes"`
}

// ToQuoteListResponse converts a slice of quotes to the list payload.
func ToQuoteListResponse(quotes []domain.Quote) *QuoteListResponse {
	resp := &QuoteListResponse{
		Count:  len(quotes),
		Quotes: make([]*QuoteResponse, 0, len(quotes)),
	}

	for i := range quotes {
		resp.Quotes = append(resp.Quotes, ToQuoteResponse(&quotes[i]))
	}

	return resp
}

// CreateQuoteRequest is the body for POST /api/v1/quotes.
type CreateQuoteRequest struct {
	Text      string `json:"text"      validate:"required,notblank"`
	Character string `json:"character" validate:"required,notblank"`
	Episode   string `json:"episode"   validate:"required,notblank"`
	Season    *int   `json:"season,omitempty"`
	Year      *int   `json:"year,omitempty"`
}

// ToDraft converts the request to a domain draft.
func (r *CreateQuoteRequest) ToDraft() domain.QuoteDraft {
	return domain.QuoteDraft{
		Text:      r.Text,
		Character: r.Character,
		Episode:   r.Episode,
		Season:    r.Season,
		Year:      r.Year,
	}
}

// UpdateQuoteRequest is the body for PUT /api/v1/quotes/:id.
// Absent fields are left unchanged. Field-emptiness rules are enforced
// by the store, not duplicated here.
type UpdateQuoteRequest struct {
	Text      *string `json:"text,omitempty"`
	Character *string `json:"character,omitempty"`
	Episode   *string `json:"episode,omitempty"`
	Season    *int    `json:"season,omitempty"`
	Year      *int    `json:"year,omitempty"`
}

// ToUpdate converts the request to a domain partial update.
func (r *UpdateQuoteRequest) ToUpdate() domain.QuoteUpdate {
	return domain.QuoteUpdate{
		Text:      r.Text,
		Character: r.Character,
		Episode:   r.Episode,
		Season:    r.Season,
		Year:      r.Year,
	}
}

// DeleteQuoteResponse confirms a successful delete.
type DeleteQuoteResponse struct {
	Message string `json:"message"`
}
