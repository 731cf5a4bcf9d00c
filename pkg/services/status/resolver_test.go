package status

import (
	"testing"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	laterToday := time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		customer domain.Customer
		expected domain.ClientStatus
	}{
		{
			name:     "active without end date",
			customer: domain.Customer{Status: domain.StatusActive},
			expected: domain.ClientActive,
		},
		{
			name:     "active with past end date is finalized",
			customer: domain.Customer{Status: domain.StatusActive, EndDate: &yesterday},
			expected: domain.ClientFinalized,
		},
		{
			name:     "end date later the same day counts as reached",
			customer: domain.Customer{Status: domain.StatusActive, EndDate: &laterToday},
			expected: domain.ClientFinalized,
		},
		{
			name:     "future end date keeps stored status",
			customer: domain.Customer{Status: domain.StatusAtRisk, EndDate: &tomorrow},
			expected: domain.ClientAtRisk,
		},
		{
			name:     "canceled wins over future end date",
			customer: domain.Customer{Status: domain.StatusCanceled, EndDate: &tomorrow},
			expected: domain.ClientCanceled,
		},
		{
			name:     "canceled wins over past end date",
			customer: domain.Customer{Status: domain.StatusCanceled, EndDate: &yesterday},
			expected: domain.ClientCanceled,
		},
		{
			name:     "finalized wins over delinquent",
			customer: domain.Customer{Status: domain.StatusDelinquent, EndDate: &yesterday},
			expected: domain.ClientFinalized,
		},
		{
			name:     "delinquent",
			customer: domain.Customer{Status: domain.StatusDelinquent},
			expected: domain.ClientDelinquent,
		},
		{
			name:     "at risk",
			customer: domain.Customer{Status: domain.StatusAtRisk},
			expected: domain.ClientAtRisk,
		},
		{
			name:     "stored finalized without end date falls back to active",
			customer: domain.Customer{Status: domain.StatusFinalized},
			expected: domain.ClientActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.customer, now))
		})
	}
}

func TestResolver_UsesInjectedClock(t *testing.T) {
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := domain.Customer{Status: domain.StatusActive, EndDate: &end}

	before := NewResolver(clock.Fixed(end.AddDate(0, 0, -2)))
	after := NewResolver(clock.Fixed(end.AddDate(0, 0, 2)))

	assert.Equal(t, domain.ClientActive, before.Resolve(c))
	assert.Equal(t, domain.ClientFinalized, after.Resolve(c))
	assert.Equal(t, after.Resolve(c), after.Resolve(c))
}
