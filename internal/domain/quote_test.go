package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestQuoteDraft_Validate(t *testing.T) {
	tests := []struct {
		name      string
		draft     QuoteDraft
		wantField string
	}{
		{
			name: "valid draft",
			draft: QuoteDraft{
				Text:      "Bite my shiny metal ass!",
				Character: "Bender",
				Episode:   "A Fishful of Dollars",
			},
			wantField: "",
		},
		{
			name: "valid draft with season and year",
			draft: QuoteDraft{
				Text:      "Good news everyone!",
				Character: "Professor Farnsworth",
				Episode:   "Various Episodes",
				Season:    intPtr(1),
				Year:      intPtr(1999),
			},
			wantField: "",
		},
		{
			name: "empty text",
			draft: QuoteDraft{
				Text:      "",
				Character: "Fry",
				Episode:   "Test",
			},
			wantField: "text",
		},
		{
			name: "whitespace-only text",
			draft: QuoteDraft{
				Text:      "   ",
				Character: "Fry",
				Episode:   "Test",
			},
			wantField: "text",
		},
		{
			name: "empty character",
			draft: QuoteDraft{
				Text:      "Shut up and take my money!",
				Character: "",
				Episode:   "Attack of the Killer App",
			},
			wantField: "character",
		},
		{
			name: "empty episode",
			draft: QuoteDraft{
				Text:      "Why not Zoidberg?",
				Character: "Dr. Zoidberg",
				Episode:   "",
			},
			wantField: "episode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestQuoteUpdate_Validate(t *testing.T) {
	tests := []struct {
		name      string
		update    QuoteUpdate
		wantField string
	}{
		{
			name:      "empty update is valid",
			update:    QuoteUpdate{},
			wantField: "",
		},
		{
			name:      "text only",
			update:    QuoteUpdate{Text: strPtr("New text")},
			wantField: "",
		},
		{
			name:      "explicit empty text rejected",
			update:    QuoteUpdate{Text: strPtr("")},
			wantField: "text",
		},
		{
			name:      "explicit empty character rejected",
			update:    QuoteUpdate{Character: strPtr(" ")},
			wantField: "character",
		},
		{
			name:      "explicit empty episode rejected",
			update:    QuoteUpdate{Episode: strPtr("")},
			wantField: "episode",
		},
		{
			name:      "season and year alone are valid",
			update:    QuoteUpdate{Season: intPtr(4), Year: intPtr(2002)},
			wantField: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestQuoteUpdate_Apply(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	base := Quote{
		ID:        7,
		Text:      "Bite my shiny metal ass!",
		Character: "Bender",
		Episode:   "A Fishful of Dollars",
		CreatedAt: created,
	}

	t.Run("changes only supplied fields", func(t *testing.T) {
		updated := QuoteUpdate{Character: strPtr("Bender Jr.")}.Apply(base)

		assert.Equal(t, "Bender Jr.", updated.Character)
		assert.Equal(t, base.Text, updated.Text)
		assert.Equal(t, base.Episode, updated.Episode)
		assert.Equal(t, base.ID, updated.ID)
		assert.Equal(t, created, updated.CreatedAt)
	})

	t.Run("sets optional fields", func(t *testing.T) {
		updated := QuoteUpdate{Season: intPtr(1), Year: intPtr(1999)}.Apply(base)

		require.NotNil(t, updated.Season)
		require.NotNil(t, updated.Year)
		assert.Equal(t, 1, *updated.Season)
		assert.Equal(t, 1999, *updated.Year)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		updated := QuoteUpdate{}.Apply(base)
		assert.Equal(t, base, updated)
	})
}

func TestQuoteUpdate_IsEmpty(t *testing.T) {
	assert.True(t, QuoteUpdate{}.IsEmpty())
	assert.False(t, QuoteUpdate{Text: strPtr("x")}.IsEmpty())
	assert.False(t, QuoteUpdate{Year: intPtr(3000)}.IsEmpty())
}
