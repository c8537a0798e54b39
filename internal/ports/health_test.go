package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChecker is a HealthChecker with a fixed outcome.
type fakeChecker struct {
	name string
	err  error
}

func (f *fakeChecker) Name() string { return f.name }

func (f *fakeChecker) Check(context.Context) error { return f.err }

func TestHealthRegistry_EmptyIsHealthy(t *testing.T) {
	registry := NewHealthRegistry()

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestHealthRegistry_RejectsDuplicateNames(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&fakeChecker{name: "store"}))

	err := registry.Register(&fakeChecker{name: "store"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateChecker)
}

func TestHealthRegistry_CheckAll(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []*fakeChecker
		wantStatus HealthStatus
	}{
		{
			name: "all healthy",
			checkers: []*fakeChecker{
				{name: "store"},
				{name: "quotes-api"},
			},
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "one unhealthy",
			checkers: []*fakeChecker{
				{name: "store"},
				{name: "quotes-api", err: errors.New("connection refused")},
			},
			wantStatus: HealthStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))

			for _, c := range tt.checkers {
				check, ok := result.Checks[c.name]
				require.True(t, ok, "missing check result for %s", c.name)

				if c.err != nil {
					assert.Equal(t, HealthStatusUnhealthy, check.Status)
					assert.Equal(t, c.err.Error(), check.Message)
				} else {
					assert.Equal(t, HealthStatusHealthy, check.Status)
					assert.Empty(t, check.Message)
				}
			}
		})
	}
}
