package seed

import (
	"time"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
)

// Dataset is a full set of records a store can be loaded with.
type Dataset struct {
	Products        []domain.Product
	Customers       []domain.Customer
	Points          []domain.MetricPoint
	Recommendations []domain.Recommendation
}

// Size is the number of records in the dataset.
func (d Dataset) Size() int {
	return len(d.Products) + len(d.Customers) + len(d.Points) + len(d.Recommendations)
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func at(value string) *time.Time {
	return domain.Date(ts(value))
}

// Products returns the demo catalogue.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "prod-1",
			Name:        "Plano Starter",
			Description: "Entry plan for small businesses",
			BasePrice:   497,
			Kind:        domain.ProductKindPlan,
			Active:      true,
			CreatedAt:   ts("2024-01-15T10:00:00Z"),
		},
		{
			ID:          "prod-2",
			Name:        "Plano Growth",
			Description: "Intermediate plan with advanced features",
			BasePrice:   997,
			Kind:        domain.ProductKindPlan,
			Active:      true,
			CreatedAt:   ts("2024-01-15T10:00:00Z"),
		},
		{
			ID:          "prod-3",
			Name:        "Plano Enterprise",
			Description: "Complete plan for large companies",
			BasePrice:   2497,
			Kind:        domain.ProductKindPlan,
			Active:      true,
			CreatedAt:   ts("2024-01-15T10:00:00Z"),
		},
		{
			ID:          "prod-4",
			Name:        "Consultoria Estratégica",
			Description: "Tailored strategy consulting",
			BasePrice:   5000,
			Kind:        domain.ProductKindService,
			Active:      true,
			CreatedAt:   ts("2024-02-01T10:00:00Z"),
		},
		{
			ID:          "prod-5",
			Name:        "Treinamento In-Company",
			Description: "Custom training for teams",
			BasePrice:   3500,
			Kind:        domain.ProductKindService,
			Active:      false,
			CreatedAt:   ts("2024-03-10T10:00:00Z"),
		},
	}
}

// Customers returns the demo customer base.
func Customers() []domain.Customer {
	return []domain.Customer{
		{
			ID:            "cli-1",
			Company:       "Tech Solutions Ltda",
			ContactName:   "Carlos Silva",
			Email:         "carlos@techsolutions.com.br",
			Phone:         "(11) 98765-4321",
			TaxID:         "12.345.678/0001-90",
			LeadSource:    "Referral",
			ProductID:     "prod-2",
			ContractValue: domain.Float(997),
			PaymentMethod: domain.PaymentCreditCardRecurring,
			Periodicity:   domain.PeriodicityMonthly,
			StartDate:     at("2024-01-15T00:00:00Z"),
			Status:        domain.StatusActive,
			NPS:           domain.Int(9),
			Notes:         "Very satisfied, renewed the contract",
			Interactions: []domain.Interaction{
				{
					ID:          "int-1",
					Date:        ts("2024-03-15T10:00:00Z"),
					Kind:        domain.InteractionMeeting,
					Title:       "Quarterly alignment meeting",
					Description: "Reviewed Q1 results and planned Q2",
					Author:      "CS team",
				},
				{
					ID:          "int-2",
					Date:        ts("2024-02-01T10:00:00Z"),
					Kind:        domain.InteractionRenewal,
					Title:       "Contract renewal approved",
					Description: "Renewed for another 12 months",
					Author:      "Sales",
				},
			},
			CreatedAt: ts("2024-01-15T10:00:00Z"),
		},
		{
			ID:            "cli-2",
			Company:       "Inovação Digital",
			ContactName:   "Ana Paula Costa",
			Email:         "ana@inovacaodigital.com",
			Phone:         "(21) 99876-5432",
			TaxID:         "23.456.789/0001-01",
			LeadSource:    "Google Ads",
			ProductID:     "prod-3",
			ContractValue: domain.Float(2497),
			PaymentMethod: domain.PaymentCreditCardRecurring,
			Periodicity:   domain.PeriodicityMonthly,
			StartDate:     at("2024-02-01T00:00:00Z"),
			Status:        domain.StatusActive,
			NPS:           domain.Int(10),
			Notes:         "Excellent relationship, upsell potential",
			Interactions: []domain.Interaction{
				{
					ID:          "int-3",
					Date:        ts("2024-03-10T14:00:00Z"),
					Kind:        domain.InteractionFeedback,
					Title:       "Praised the support team",
					Description: "Very positive feedback about support",
					Author:      "CS",
				},
			},
			CreatedAt: ts("2024-02-01T10:00:00Z"),
		},
		{
			ID:               "cli-3",
			Company:          "StartUp XYZ",
			ContactName:      "Pedro Oliveira",
			Email:            "pedro@startupxyz.com",
			Phone:            "(11) 91234-5678",
			TaxID:            "34.567.890/0001-12",
			LeadSource:       "LinkedIn",
			ProductID:        "prod-1",
			ContractValue:    domain.Float(497),
			PaymentMethod:    domain.PaymentPixInstallments,
			DownPayment:      domain.Float(100),
			InstallmentCount: domain.Int(12),
			InstallmentValue: domain.Float(41.42),
			Periodicity:      domain.PeriodicityMonthly,
			StartDate:        at("2024-03-01T00:00:00Z"),
			Status:           domain.StatusAtRisk,
			NPS:              domain.Int(6),
			Notes:            "Complained about support, needs attention",
			Interactions: []domain.Interaction{
				{
					ID:          "int-4",
					Date:        ts("2024-03-20T16:00:00Z"),
					Kind:        domain.InteractionContact,
					Title:       "Follow-up call",
					Description: "Reported trouble using the platform",
					Author:      "Support",
				},
			},
			CreatedAt: ts("2024-03-01T10:00:00Z"),
		},
		{
			ID:               "cli-4",
			Company:          "Comércio Brasil S.A.",
			ContactName:      "Mariana Santos",
			Email:            "mariana@comerciobrasil.com.br",
			Phone:            "(31) 98765-1234",
			TaxID:            "45.678.901/0001-23",
			LeadSource:       "Event",
			ProductID:        "prod-4",
			ContractValue:    domain.Float(15000),
			PaymentMethod:    domain.PaymentBoletoInstallments,
			DownPayment:      domain.Float(5000),
			InstallmentCount: domain.Int(10),
			InstallmentValue: domain.Float(1000),
			Periodicity:      domain.PeriodicityMonthly,
			StartDate:        at("2024-01-20T00:00:00Z"),
			EndDate:          at("2024-11-20T00:00:00Z"),
			Status:           domain.StatusActive,
			NPS:              domain.Int(8),
			Notes:            "Consulting project in progress",
			Interactions: []domain.Interaction{
				{
					ID:          "int-5",
					Date:        ts("2024-03-05T11:00:00Z"),
					Kind:        domain.InteractionDelivery,
					Title:       "Project phase 2 delivered",
					Description: "Presented the consulting results",
					Author:      "Consulting",
				},
			},
			CreatedAt: ts("2024-01-20T10:00:00Z"),
		},
		{
			ID:            "cli-5",
			Company:       "Varejo Online",
			ContactName:   "Roberto Ferreira",
			Email:         "roberto@varejoonline.com",
			Phone:         "(41) 99123-4567",
			TaxID:         "56.789.012/0001-34",
			LeadSource:    "Referral",
			ProductID:     "prod-2",
			ContractValue: domain.Float(997),
			PaymentMethod: domain.PaymentCreditCardRecurring,
			Periodicity:   domain.PeriodicityMonthly,
			StartDate:     at("2023-11-01T00:00:00Z"),
			EndDate:       at("2024-03-15T00:00:00Z"),
			Status:        domain.StatusCanceled,
			NPS:           domain.Int(4),
			Notes:         "Canceled for financial reasons",
			CreatedAt:     ts("2023-11-01T10:00:00Z"),
		},
		{
			ID:            "cli-6",
			Company:       "Educação Plus",
			ContactName:   "Juliana Almeida",
			Email:         "juliana@educacaoplus.com.br",
			Phone:         "(51) 98234-5678",
			TaxID:         "67.890.123/0001-45",
			LeadSource:    "Instagram",
			ProductID:     "prod-1",
			ContractValue: domain.Float(497),
			PaymentMethod: domain.PaymentCreditCardRecurring,
			Periodicity:   domain.PeriodicityMonthly,
			StartDate:     at("2024-02-15T00:00:00Z"),
			Status:        domain.StatusActive,
			NPS:           domain.Int(7),
			Notes:         "Regular customer, no issues",
			CreatedAt:     ts("2024-02-15T10:00:00Z"),
		},
		{
			ID:            "cli-7",
			Company:       "Logística Express",
			ContactName:   "Fernando Lima",
			Email:         "fernando@logisticaexpress.com",
			Phone:         "(61) 99345-6789",
			TaxID:         "78.901.234/0001-56",
			LeadSource:    "Google Ads",
			ProductID:     "prod-3",
			ContractValue: domain.Float(2497),
			PaymentMethod: domain.PaymentCash,
			Periodicity:   domain.PeriodicityYearly,
			StartDate:     at("2024-01-10T00:00:00Z"),
			Status:        domain.StatusActive,
			NPS:           domain.Int(9),
			Notes:         "Yearly upfront payment, very satisfied",
			CreatedAt:     ts("2024-01-10T10:00:00Z"),
		},
		{
			ID:            "cli-8",
			Company:       "Saúde Bem-Estar",
			ContactName:   "Patrícia Rocha",
			Email:         "patricia@saudebemestar.com.br",
			Phone:         "(71) 98456-7890",
			TaxID:         "89.012.345/0001-67",
			LeadSource:    "Referral",
			ProductID:     "prod-2",
			ContractValue: domain.Float(997),
			PaymentMethod: domain.PaymentCreditCardRecurring,
			Periodicity:   domain.PeriodicityMonthly,
			StartDate:     at("2024-03-10T00:00:00Z"),
			Status:        domain.StatusActive,
			NPS:           domain.Int(8),
			Notes:         "New and engaged",
			CreatedAt:     ts("2024-03-10T10:00:00Z"),
		},
	}
}

// Recommendations returns the demo recommendation board.
func Recommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			ID:          "rec-1",
			Kind:        domain.KindAlert,
			Priority:    domain.PriorityHigh,
			Title:       "Churn rate above average",
			Content:     "Churn over the last 30 days is 15% above the historical average. Review the customer experience in the second month of contract.",
			GeneratedAt: ts("2024-03-20T10:00:00Z"),
		},
		{
			ID:          "rec-2",
			Kind:        domain.KindRecommendation,
			Priority:    domain.PriorityMedium,
			Title:       "Upsell opportunity identified",
			Content:     "3 Starter customers are using advanced features. Consider offering the Growth plan with a special discount.",
			GeneratedAt: ts("2024-03-19T10:00:00Z"),
		},
		{
			ID:          "rec-3",
			Kind:        domain.KindDiagnosis,
			Priority:    domain.PriorityLow,
			Title:       "CAC trending down",
			Content:     "Customer acquisition cost dropped 12% last month. Referral campaigns are bringing better qualified leads.",
			GeneratedAt: ts("2024-03-18T10:00:00Z"),
		},
		{
			ID:          "rec-4",
			Kind:        domain.KindAlert,
			Priority:    domain.PriorityHigh,
			Title:       "Customer at risk of canceling",
			Content:     "StartUp XYZ (NPS 6) had no interactions in the last 15 days and has a late payment. Act now.",
			GeneratedAt: ts("2024-03-21T10:00:00Z"),
		},
		{
			ID:          "rec-5",
			Kind:        domain.KindRecommendation,
			Priority:    domain.PriorityMedium,
			Title:       "Improve the retention strategy",
			Content:     "Customers with a personalized onboarding are 40% more likely to renew. Consider a structured process.",
			GeneratedAt: ts("2024-03-17T10:00:00Z"),
		},
		{
			ID:          "rec-6",
			Kind:        domain.KindDiagnosis,
			Priority:    domain.PriorityLow,
			Title:       "LTV growing steadily",
			Content:     "Average lifetime value grew 18% over the last 90 days, showing better retention and more value per customer.",
			GeneratedAt: ts("2024-03-16T10:00:00Z"),
		},
		{
			ID:          "rec-7",
			Kind:        domain.KindRecommendation,
			Priority:    domain.PriorityMedium,
			Title:       "Expand acquisition channels",
			Content:     "LinkedIn and referrals have the best ROI. Consider raising investment in them by 30% next quarter.",
			GeneratedAt: ts("2024-03-15T10:00:00Z"),
		},
		{
			ID:          "rec-8",
			Kind:        domain.KindAlert,
			Priority:    domain.PriorityHigh,
			Title:       "Profit margin below target",
			Content:     "Operating margin is at 22%, below the 30% target. Review operating costs and pricing.",
			GeneratedAt: ts("2024-03-14T10:00:00Z"),
		},
	}
}
