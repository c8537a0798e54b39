package dto

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/futurama-quotes/internal/domain"
)

func TestValidate_CreateQuoteRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateQuoteRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request",
			req: CreateQuoteRequest{
				Text:      "Shut up and take my money!",
				Character: "Fry",
				Episode:   "Attack of the Killer App",
			},
		},
		{
			name: "missing text",
			req: CreateQuoteRequest{
				Character: "Fry",
				Episode:   "Test",
			},
			wantErr:   true,
			wantField: "text",
		},
		{
			name: "whitespace character",
			req: CreateQuoteRequest{
				Text:      "Hello",
				Character: "   ",
				Episode:   "Test",
			},
			wantErr:   true,
			wantField: "character",
		},
		{
			name: "missing episode",
			req: CreateQuoteRequest{
				Text:      "Hello",
				Character: "Fry",
			},
			wantErr:   true,
			wantField: "episode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			fields := ValidationErrors(err)
			require.Contains(t, fields, tt.wantField, "field errors should use JSON tag names")
			assert.Equal(t, "must not be empty", fields[tt.wantField])
		})
	}
}

func TestToQuoteResponse(t *testing.T) {
	season := 1

	created := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	q := domain.Quote{
		ID:        7,
		Text:      "Bite my shiny metal ass!",
		Character: "Bender",
		Episode:   "A Fishful of Dollars",
		Season:    &season,
		CreatedAt: created,
	}

	resp := ToQuoteResponse(&q)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Bender", resp.Character)
	require.NotNil(t, resp.Season)
	assert.Equal(t, 1, *resp.Season)
	assert.Nil(t, resp.Year)
	assert.Equal(t, created, resp.CreatedAt)
}

func TestToQuoteListResponse(t *testing.T) {
	resp := ToQuoteListResponse(nil)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Quotes, "quotes should marshal as [] not null")

	quotes := []domain.Quote{
		{ID: 1, Text: "A", Character: "Fry", Episode: "E1"},
		{ID: 2, Text: "B", Character: "Leela", Episode: "E2"},
	}

	resp = ToQuoteListResponse(quotes)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Quotes, 2)
	assert.Equal(t, int64(1), resp.Quotes[0].ID)
	assert.Equal(t, "Leela", resp.Quotes[1].Character)
}

func TestUpdateQuoteRequest_ToUpdate(t *testing.T) {
	text := "New text"

	req := UpdateQuoteRequest{Text: &text}
	upd := req.ToUpdate()

	require.NotNil(t, upd.Text)
	assert.Equal(t, "New text", *upd.Text)
	assert.Nil(t, upd.Character)
	assert.False(t, upd.IsEmpty())

	assert.True(t, (&UpdateQuoteRequest{}).ToUpdate().IsEmpty())
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFoundError("quote", 99),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
		},
		{
			name:       "validation",
			err:        domain.NewValidationError("text", "must not be empty"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValidation,
		},
		{
			name:       "unavailable",
			err:        domain.NewUnavailableError("quotes-api", "connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "unknown error hides details",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)

			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, resp.Error.Message, tt.err.Error())
			}
		})
	}
}

func TestMapDomainError_ValidationDetails(t *testing.T) {
	status, resp := MapDomainError(domain.NewValidationError("character", "must not be empty"))

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error.Details)
	assert.Equal(t, "must not be empty", resp.Error.Details["character"])
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}
