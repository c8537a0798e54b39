// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"time"
)

// Quote represents a single Futurama quote.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the unique identifier, assigned by the store at creation.
	// IDs are strictly increasing and never reused, even after deletion.
	ID int64

	// Text is the quote itself. Always non-empty.
	Text string

	// Character is who said the quote. Always non-empty.
	Character string

	// Episode is the episode the quote appeared in. Always non-empty.
	Episode string

	// Season is the season number, if known.
	Season *int

	// Year is the airing year, if known.
	Year *int

	// CreatedAt is set once at insertion and never changes.
	CreatedAt time.Time
}

// QuoteDraft holds the caller-supplied fields for creating a quote.
// ID and CreatedAt are assigned by the store, never by the caller.
type QuoteDraft struct {
	Text      string
	Character string
	Episode   string
	Season    *int
	Year      *int
}

// Validate checks the draft against the required-field rules.
// Whitespace-only values count as empty.
func (d QuoteDraft) Validate() error {
	if isBlank(d.Text) {
		return NewValidationError("text", "must not be empty")
	}

	if isBlank(d.Character) {
		return NewValidationError("character", "must not be empty")
	}

	if isBlank(d.Episode) {
		return NewValidationError("episode", "must not be empty")
	}

	return nil
}

// QuoteUpdate is a partial update. Nil fields are left unchanged.
// There is no way to clear season or year once set; the original
// API never needed one and neither does this.
type QuoteUpdate struct {
	Text      *string
	Character *string
	Episode   *string
	Season    *int
	Year      *int
}

// IsEmpty reports whether the update changes nothing.
func (u QuoteUpdate) IsEmpty() bool {
	return u.Text == nil && u.Character == nil && u.Episode == nil &&
		u.Season == nil && u.Year == nil
}

// Validate checks that supplied fields do not violate the required-field
// rules. An absent (nil) field is fine; a field explicitly set to an
// empty string is not.
func (u QuoteUpdate) Validate() error {
	if u.Text != nil && isBlank(*u.Text) {
		return NewValidationError("text", "must not be empty")
	}

	if u.Character != nil && isBlank(*u.Character) {
		return NewValidationError("character", "must not be empty")
	}

	if u.Episode != nil && isBlank(*u.Episode) {
		return NewValidationError("episode", "must not be empty")
	}

	return nil
}

// Apply returns a copy of q with the update applied.
// The caller must validate the update first; Apply never touches
// ID or CreatedAt.
func (u QuoteUpdate) Apply(q Quote) Quote {
	if u.Text != nil {
		q.Text = *u.Text
	}

	if u.Character != nil {
		q.Character = *u.Character
	}

	if u.Episode != nil {
		q.Episode = *u.Episode
	}

	if u.Season != nil {
		q.Season = u.Season
	}

	if u.Year != nil {
		q.Year = u.Year
	}

	return q
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
