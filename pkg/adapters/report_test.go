package adapters

import (
	"testing"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var period = domain.Period{
	From: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	To:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
}

func TestMapScorecardToReport(t *testing.T) {
	sc := domain.Scorecard{
		Period:       period,
		Objective:    domain.ObjectiveScaleSales,
		RevenueDelta: 12.5,
		MRR:          4988,
		Health:       domain.HealthScoreResult{Score: 78, Classification: domain.HealthMedium},
		KPIs: []domain.KPI{
			{Key: domain.KPIRevenue, Title: "Revenue", Value: 6000, Unit: domain.UnitCurrency, Delta: domain.Float(100)},
			{Key: domain.KPIChurn, Title: "Churn rate", Value: 12.5, Unit: domain.UnitPercent},
		},
		Highlights: []domain.Recommendation{
			{ID: "rec-1", Kind: domain.KindAlert, Priority: domain.PriorityHigh, Title: "Churn rising"},
		},
	}

	report := MapScorecardToReport(sc)

	assert.Equal(t, "Health 78/100 (medium)", report.Headline)
	assert.Equal(t, 30, report.Period.Duration)
	require.Len(t, report.Sections, 2)

	kpis := report.Sections[0]
	assert.Equal(t, "R$ 4.988,00", kpis.Summary["MRR"])
	assert.Equal(t, "+12,5%", kpis.Summary["Revenue trend"])
	assert.Equal(t, "scale-sales", kpis.Summary["Objective"])
	assert.Equal(t, []domain.ReportDetail{
		{Name: "Revenue", Value: "R$ 6.000,00", Unit: "currency", Description: "vs previous period: +100,0%"},
		{Name: "Churn rate", Value: "12,5%", Unit: "percent"},
	}, kpis.Details)

	highlights := report.Sections[1]
	require.Len(t, highlights.Details, 1)
	assert.Equal(t, "high", highlights.Details[0].Value)
}

func TestMapCustomersToReport(t *testing.T) {
	views := []domain.CustomerView{
		{
			Customer: domain.Customer{
				ID: "cli-1", Company: "Tech Solutions", ContactName: "Carlos Silva",
				ContractValue: domain.Float(15000),
			},
			ResolvedStatus: domain.ClientActive,
			Product:        &domain.Product{Name: "Consulting"},
		},
		{
			Customer:       domain.Customer{ID: "cli-9", ContactName: "Solo Founder"},
			ResolvedStatus: domain.ClientFinalized,
		},
	}

	report := MapCustomersToReport(views, period)

	require.Len(t, report.Sections, 1)
	details := report.Sections[0].Details
	require.Len(t, details, 2)
	assert.Equal(t, domain.ReportDetail{
		Name: "Tech Solutions", Value: "active", Unit: "cli-1",
		Description: "Carlos Silva, Consulting, R$ 15.000,00",
	}, details[0])
	assert.Equal(t, "Solo Founder", details[1].Name)
	assert.Equal(t, "Solo Founder, , no contract value", details[1].Description)
}

func TestMapCustomerDetailToReport(t *testing.T) {
	detail := domain.CustomerDetail{
		CustomerView: domain.CustomerView{
			Customer:       domain.Customer{ID: "cli-2", Company: "Inovação Digital", ContactName: "Ana Paula Costa"},
			ResolvedStatus: domain.ClientActive,
		},
		LTV:              4994,
		RelationshipDays: 60,
		Ascension:        domain.Float(25),
		Recommendations: []domain.ClientRecommendation{
			{Type: domain.TypeUpsell, Title: "Expansion opportunity", Priority: domain.PriorityMedium},
		},
	}

	report := MapCustomerDetailToReport(detail, period)

	assert.Equal(t, "Customer cli-2", report.Title)
	require.Len(t, report.Sections, 2)
	assert.Equal(t, "R$ 4.994,00", report.Sections[0].Summary["LTV"])
	assert.Equal(t, "25,0%", report.Sections[0].Summary["Ascension"])
	assert.Equal(t, []domain.ReportDetail{
		{Name: "Upsell", Value: "medium", Description: "Expansion opportunity"},
	}, report.Sections[1].Details)
}

func TestMapBoardToReport(t *testing.T) {
	report := MapBoardToReport([]domain.Recommendation{
		{Title: "Churn rising", Kind: domain.KindAlert, Priority: domain.PriorityHigh, Content: "Call them"},
		{Title: "Raise prices", Kind: domain.KindRecommendation, Priority: domain.PriorityLow, Resolved: true, Content: "Later"},
	}, period)

	require.Len(t, report.Sections, 1)
	section := report.Sections[0]
	assert.Equal(t, map[string]any{"Open": 1, "Resolved": 1}, section.Summary)
	assert.Equal(t, "open: Call them", section.Details[0].Description)
	assert.Equal(t, "resolved: Later", section.Details[1].Description)
}
