package terminal

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.Report{
		Title: "Customer cli-2",
		Period: domain.TimePeriod{
			Start:    time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Duration: 30,
		},
		Headline: "Inovação Digital",
		Sections: []domain.ReportSection{{
			Title:   "Recommendations",
			Summary: map[string]any{"Count": 1},
			Details: []domain.ReportDetail{
				{Name: "Upsell", Value: "medium", Description: "Expansion opportunity"},
			},
		}},
	}

	require.NoError(t, NewReporter(&buf).Handle(report))

	assert.Equal(t, `
Customer cli-2 (30 days)
Period: 2024-03-02 to 2024-04-01
Inovação Digital

=== Recommendations ===
Count: 1
- Upsell: medium
  Expansion opportunity
`, buf.String())
}

func newCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	c := clock.Fixed(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))
	registry, err := store.NewRegistry(c, 30)
	require.NoError(t, err)

	var out bytes.Buffer
	return NewCLI(Options{
		Registry:  registry,
		Clock:     c,
		Output:    &out,
		ErrOutput: io.Discard,
	}), &out
}

func TestCLI_Commands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "report as table",
			args:     []string{"report"},
			contains: []string{"Growth scorecard (30 days)", "Health ", "| Total revenue ", "=== Highlights ==="},
		},
		{
			name:     "report with retention objective",
			args:     []string{"report", "--objective", "reduce-churn", "--days", "7", "--format", "text"},
			contains: []string{"Growth scorecard (7 days)", "Objective: reduce-churn", "- Retention rate: "},
		},
		{
			name:     "customer list",
			args:     []string{"customers", "--format", "text"},
			contains: []string{"8 customers", "- Tech Solutions Ltda: active (cli-1)"},
		},
		{
			name:     "filtered customer list",
			args:     []string{"customers", "--search", "varejo", "--format", "text"},
			contains: []string{"1 customers", "Varejo Online"},
		},
		{
			name:     "customer detail",
			args:     []string{"customers", "cli-2", "--format", "text"},
			contains: []string{"Customer cli-2", "- Upsell: medium"},
		},
		{
			name:     "customer recommendations",
			args:     []string{"recommendations", "--customer", "cli-2", "--format", "text"},
			contains: []string{"=== Recommendations ===", "Upsell"},
		},
		{
			name:     "board",
			args:     []string{"recommendations", "--kind", "alert", "--format", "text"},
			contains: []string{"=== Board ===", "(alert)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := newCLI(t)
			require.NoError(t, cli.Run(context.Background(), tt.args))
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestCLI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown format", args: []string{"report", "--format", "xml"}, wantErr: "unknown output format"},
		{name: "unknown objective", args: []string{"report", "--objective", "world-domination"}, wantErr: "unknown objective"},
		{name: "unknown status", args: []string{"customers", "--status", "sleeping"}, wantErr: "unknown status"},
		{name: "unknown customer", args: []string{"customers", "cli-404"}, wantErr: "not found"},
		{name: "unknown driver", args: []string{"report", "--driver", "postgres"}, wantErr: "not registered"},
		{name: "seed without db", args: []string{"seed"}, wantErr: `required flag(s) "db" not set`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := newCLI(t)
			assert.ErrorContains(t, cli.Run(context.Background(), tt.args), tt.wantErr)
		})
	}
}

func TestCLI_SeedThenReport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scorecard.db")

	cli, out := newCLI(t)
	require.NoError(t, cli.Run(context.Background(), []string{"seed", "--db", dbPath, "--days", "7", "--seed", "42"}))
	assert.Contains(t, out.String(), "Loaded 35 records into "+dbPath)

	cli, out = newCLI(t)
	require.NoError(t, cli.Run(context.Background(),
		[]string{"customers", "--driver", "duckdb", "--dsn", dbPath, "--format", "text"}))
	assert.Contains(t, out.String(), "8 customers")
}
