package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.Report{
		Title: "Growth scorecard",
		Period: domain.TimePeriod{
			Start:    time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Duration: 30,
		},
		Headline: "Health 78/100 (medium)",
		Sections: []domain.ReportSection{{
			Title:   "Key indicators",
			Summary: map[string]any{"MRR": "R$ 4.988,00"},
			Details: []domain.ReportDetail{
				{Name: "Revenue", Value: "R$ 6.000,00", Unit: "currency"},
				{Name: "Comércio Brasil S.A.", Value: "active", Description: strings.Repeat("x", 80)},
			},
		}},
	}

	require.NoError(t, NewReporter(&buf).Handle(report))
	out := buf.String()

	assert.Contains(t, out, "Growth scorecard (30 days)")
	assert.Contains(t, out, "Active Period: 2024-03-02 to 2024-04-01")
	assert.Contains(t, out, "MRR: R$ 4.988,00")
	assert.Contains(t, out, "| Revenue                          | R$ 6.000,00        | currency     |")

	var widths []int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") || strings.HasPrefix(line, "+") {
			widths = append(widths, len([]rune(line)))
		}
	}
	require.NotEmpty(t, widths)
	for _, w := range widths {
		assert.Equal(t, widths[0], w, "table rows must align")
	}
}

func TestCell(t *testing.T) {
	assert.Equal(t, "ab   ", cell("ab", 5))
	assert.Equal(t, "Comé…", cell("Comércio", 5))
	assert.Equal(t, "exact", cell("exact", 5))
}
