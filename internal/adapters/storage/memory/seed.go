package memory

import (
	"context"
	"fmt"

	"github.com/jsamuelsen/futurama-quotes/internal/domain"
)

// sampleQuotes are the quotes loaded into a fresh store on startup
// when seeding is enabled.
var sampleQuotes = []domain.QuoteDraft{
	{Text: "Bite my shiny metal ass!", Character: "Bender", Episode: "A Fishful of Dollars"},
	{Text: "Good news everyone!", Character: "Professor Farnsworth", Episode: "Various Episodes"},
	{Text: "Shut up and take my money!", Character: "Fry", Episode: "Attack of the Killer App"},
	{Text: "Why not Zoidberg?", Character: "Dr. Zoidberg", Episode: "Various Episodes"},
}

// Seed inserts the sample quotes. Intended for a freshly created
// store; seeding a non-empty store just appends with fresh ids.
func (s *Store) Seed(ctx context.Context) error {
	for _, draft := range sampleQuotes {
		if _, err := s.Create(ctx, draft); err != nil {
			return fmt.Errorf("seeding sample quotes: %w", err)
		}
	}

	return nil
}
