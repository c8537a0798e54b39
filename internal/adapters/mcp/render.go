package mcp

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen/futurama-quotes/internal/domain"
	"github.com/jsamuelsen/futurama-quotes/internal/ports"
)

// Rendering is a pure formatting step: each tool result gets a short
// human-readable summary alongside the structured payload. The formats
// are kept stable since assistants quote them verbatim to users.

func renderQuoteList(quotes []domain.Quote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Found %d quotes:\n\n", len(quotes))

	for i := range quotes {
		q := &quotes[i]
		fmt.Fprintf(&b, "ID %d: %q - %s\n", q.ID, q.Text, q.Character)
	}

	return b.String()
}

func renderQuoteDetail(q *domain.Quote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Quote ID %d:\n", q.ID)
	fmt.Fprintf(&b, "Text: %q\n", q.Text)
	fmt.Fprintf(&b, "Character: %s\n", q.Character)
	fmt.Fprintf(&b, "Episode: %s\n", q.Episode)

	if q.Season != nil {
		fmt.Fprintf(&b, "Season: %d\n", *q.Season)
	}

	if q.Year != nil {
		fmt.Fprintf(&b, "Year: %d\n", *q.Year)
	}

	return b.String()
}

func renderCreated(q *domain.Quote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Created quote ID %d:\n", q.ID)
	fmt.Fprintf(&b, "Text: %q\n", q.Text)
	fmt.Fprintf(&b, "Character: %s\n", q.Character)

	return b.String()
}

func renderUpdated(q *domain.Quote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Updated quote ID %d:\n", q.ID)
	fmt.Fprintf(&b, "Text: %q\n", q.Text)
	fmt.Fprintf(&b, "Character: %s\n", q.Character)
	fmt.Fprintf(&b, "Episode: %s\n", q.Episode)

	if q.Season != nil {
		fmt.Fprintf(&b, "Season: %d\n", *q.Season)
	}

	if q.Year != nil {
		fmt.Fprintf(&b, "Year: %d\n", *q.Year)
	}

	return b.String()
}

func renderDeleted(id int64, message string) string {
	return fmt.Sprintf("Successfully deleted quote ID %d\nMessage: %s\n", id, message)
}

func renderHealth(status *ports.APIStatus) string {
	return fmt.Sprintf("API Status: %s\nMessage: %s\n", status.Status, status.Message)
}

// renderError tags the message with the error kind so callers can tell
// a missing id from bad input or an unreachable API without parsing
// prose.
func renderError(err error) string {
	switch {
	case domain.IsNotFound(err):
		return "NotFound: " + err.Error()
	case domain.IsValidation(err):
		return "ValidationError: " + err.Error()
	case domain.IsUnavailable(err):
		return "TransportError: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
