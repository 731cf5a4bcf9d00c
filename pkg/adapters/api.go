package adapters

import (
	"strings"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/format"
	"github.com/de-tools/growth-scorecard/pkg/models/api"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
)

// FormatKPI renders a KPI value according to its unit.
func FormatKPI(k domain.KPI) string {
	switch k.Unit {
	case domain.UnitCurrency:
		return format.BRL(k.Value)
	case domain.UnitPercent:
		return format.Percent(k.Value)
	default:
		return format.Number(k.Value)
	}
}

func MapDomainPeriodToAPI(p domain.Period) api.TimePeriod {
	return api.TimePeriod{
		Start:               p.From,
		End:                 p.To,
		Duration:            p.Days(),
		CompareWithPrevious: p.CompareWithPrevious,
	}
}

func MapDomainScorecardToAPI(sc domain.Scorecard) api.Scorecard {
	kpis := make([]api.KPI, len(sc.KPIs))
	for i, k := range sc.KPIs {
		kpis[i] = api.KPI{
			Key:       string(k.Key),
			Title:     k.Title,
			Value:     k.Value,
			Unit:      string(k.Unit),
			Formatted: FormatKPI(k),
			Delta:     k.Delta,
		}
	}

	return api.Scorecard{
		Period:    MapDomainPeriodToAPI(sc.Period),
		Objective: string(sc.Objective),
		KPIs:      kpis,
		Health: api.HealthScore{
			Score:          sc.Health.Score,
			Classification: string(sc.Health.Classification),
			Color:          string(sc.Health.Color),
		},
		RevenueDelta:          sc.RevenueDelta,
		MRR:                   sc.MRR,
		AverageNPS:            sc.AverageNPS,
		MultiInstallmentShare: sc.MultiInstallmentShare,
		MeanPointLTV:          sc.MeanPointLTV,
		Highlights:            MapDomainRecommendationsToAPI(sc.Highlights),
		RevenueSeries:         mapSeries(sc.RevenueSeries),
		LTVSeries:             mapSeries(sc.LTVSeries),
		RetentionSeries:       mapSeries(sc.RetentionSeries),
	}
}

func mapSeries(points []domain.SeriesPoint) []api.SeriesPoint {
	out := make([]api.SeriesPoint, len(points))
	for i, p := range points {
		out[i] = api.SeriesPoint{Date: p.Date, Current: p.Current, Previous: p.Previous}
	}
	return out
}

func MapDomainMetricPointsToAPI(points []domain.MetricPoint) []api.MetricPoint {
	out := make([]api.MetricPoint, len(points))
	for i, p := range points {
		out[i] = api.MetricPoint{
			Date:       p.Date,
			Revenue:    p.Revenue,
			Ticket:     p.Ticket,
			LTV:        p.LTV,
			CAC:        p.CAC,
			MRR:        p.MRR,
			ROI:        p.ROI,
			ChurnRate:  p.ChurnRate,
			UpsellRate: p.UpsellRate,
		}
	}
	return out
}

func MapDomainRecommendationsToAPI(recs []domain.Recommendation) []api.Recommendation {
	out := make([]api.Recommendation, len(recs))
	for i, r := range recs {
		out[i] = MapDomainRecommendationToAPI(r)
	}
	return out
}

func MapDomainRecommendationToAPI(r domain.Recommendation) api.Recommendation {
	return api.Recommendation{
		ID:          r.ID,
		Kind:        string(r.Kind),
		Priority:    string(r.Priority),
		Title:       r.Title,
		Content:     r.Content,
		Resolved:    r.Resolved,
		GeneratedAt: r.GeneratedAt,
	}
}

func MapDomainClientRecommendationsToAPI(recs []domain.ClientRecommendation) []api.ClientRecommendation {
	out := make([]api.ClientRecommendation, len(recs))
	for i, r := range recs {
		out[i] = api.ClientRecommendation{
			Type:     string(r.Type),
			Title:    r.Title,
			Content:  r.Content,
			Priority: string(r.Priority),
		}
	}
	return out
}

func MapDomainProductToAPI(p domain.Product) api.Product {
	return api.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		Kind:        string(p.Kind),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

func MapDomainCustomerViewToAPI(v domain.CustomerView) api.Customer {
	c := v.Customer
	out := api.Customer{
		ID:               c.ID,
		Company:          c.Company,
		ContactName:      c.ContactName,
		Email:            c.Email,
		Phone:            c.Phone,
		TaxID:            c.TaxID,
		LeadSource:       c.LeadSource,
		ProductID:        c.ProductID,
		ContractValue:    c.ContractValue,
		PaymentMethod:    string(c.PaymentMethod),
		DownPayment:      c.DownPayment,
		InstallmentCount: c.InstallmentCount,
		InstallmentValue: c.InstallmentValue,
		Periodicity:      string(c.Periodicity),
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		Status:           string(c.Status),
		ResolvedStatus:   string(v.ResolvedStatus),
		NPS:              c.NPS,
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
	}
	for _, i := range c.Interactions {
		out.Interactions = append(out.Interactions, api.Interaction{
			ID:          i.ID,
			Date:        i.Date,
			Kind:        string(i.Kind),
			Title:       i.Title,
			Description: i.Description,
			Author:      i.Author,
		})
	}
	if v.Product != nil {
		p := MapDomainProductToAPI(*v.Product)
		out.Product = &p
	}
	return out
}

func MapDomainCustomerDetailToAPI(d domain.CustomerDetail) api.CustomerDetail {
	return api.CustomerDetail{
		Customer:         MapDomainCustomerViewToAPI(d.CustomerView),
		LTV:              d.LTV,
		RelationshipDays: d.RelationshipDays,
		MonthsActive:     d.MonthsActive,
		Ascension:        d.Ascension,
		Recommendations:  MapDomainClientRecommendationsToAPI(d.Recommendations),
	}
}

// MapAPICustomerRequestToDomain builds the customer stored under id. Interaction IDs are
// produced by newID; installment fields are dropped for methods that do not use them.
func MapAPICustomerRequestToDomain(
	id string,
	req api.CustomerRequest,
	createdAt time.Time,
	newID func() string,
) domain.Customer {
	c := domain.Customer{
		ID:               id,
		Company:          strings.TrimSpace(req.Company),
		ContactName:      strings.TrimSpace(req.ContactName),
		Email:            req.Email,
		Phone:            req.Phone,
		TaxID:            req.TaxID,
		LeadSource:       req.LeadSource,
		ProductID:        req.ProductID,
		ContractValue:    req.ContractValue,
		PaymentMethod:    domain.PaymentMethod(req.PaymentMethod),
		DownPayment:      req.DownPayment,
		InstallmentCount: req.InstallmentCount,
		InstallmentValue: req.InstallmentValue,
		Periodicity:      domain.Periodicity(req.Periodicity),
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           domain.CustomerStatus(req.Status),
		NPS:              req.NPS,
		Notes:            req.Notes,
		CreatedAt:        createdAt,
	}
	if !c.PaymentMethod.UsesInstallmentFields() {
		c.InstallmentCount = nil
		c.InstallmentValue = nil
	}
	for _, i := range req.Interactions {
		c.Interactions = append(c.Interactions, domain.Interaction{
			ID:          newID(),
			Date:        i.Date,
			Kind:        domain.InteractionKind(i.Kind),
			Title:       i.Title,
			Description: i.Description,
			Author:      i.Author,
		})
	}
	return c
}

func MapAPIProductRequestToDomain(id string, req api.ProductRequest, createdAt time.Time) domain.Product {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Kind:        domain.ProductKind(req.Kind),
		Active:      active,
		CreatedAt:   createdAt,
	}
}
