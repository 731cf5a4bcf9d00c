package adapters

import (
	"database/sql"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/models/store"
)

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return domain.Float(v.Float64)
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	return domain.Int(int(v.Int64))
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return domain.Date(v.Time)
}

func MapDomainCustomerToStore(c domain.Customer) store.CustomerRecord {
	return store.CustomerRecord{
		ID:               c.ID,
		Company:          c.Company,
		ContactName:      c.ContactName,
		Email:            c.Email,
		Phone:            c.Phone,
		TaxID:            c.TaxID,
		LeadSource:       c.LeadSource,
		ProductID:        c.ProductID,
		ContractValue:    nullFloat(c.ContractValue),
		PaymentMethod:    string(c.PaymentMethod),
		DownPayment:      nullFloat(c.DownPayment),
		InstallmentCount: nullInt(c.InstallmentCount),
		InstallmentValue: nullFloat(c.InstallmentValue),
		Periodicity:      string(c.Periodicity),
		StartDate:        nullTime(c.StartDate),
		EndDate:          nullTime(c.EndDate),
		Status:           string(c.Status),
		NPS:              nullInt(c.NPS),
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
	}
}

// MapStoreCustomerToDomain rebuilds a customer from its row and its interaction rows.
func MapStoreCustomerToDomain(r store.CustomerRecord, interactions []store.InteractionRecord) domain.Customer {
	c := domain.Customer{
		ID:               r.ID,
		Company:          r.Company,
		ContactName:      r.ContactName,
		Email:            r.Email,
		Phone:            r.Phone,
		TaxID:            r.TaxID,
		LeadSource:       r.LeadSource,
		ProductID:        r.ProductID,
		ContractValue:    floatPtr(r.ContractValue),
		PaymentMethod:    domain.PaymentMethod(r.PaymentMethod),
		DownPayment:      floatPtr(r.DownPayment),
		InstallmentCount: intPtr(r.InstallmentCount),
		InstallmentValue: floatPtr(r.InstallmentValue),
		Periodicity:      domain.Periodicity(r.Periodicity),
		StartDate:        timePtr(r.StartDate),
		EndDate:          timePtr(r.EndDate),
		Status:           domain.CustomerStatus(r.Status),
		NPS:              intPtr(r.NPS),
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt,
	}
	for _, i := range interactions {
		c.Interactions = append(c.Interactions, MapStoreInteractionToDomain(i))
	}
	return c
}

func MapDomainInteractionToStore(customerID string, i domain.Interaction) store.InteractionRecord {
	return store.InteractionRecord{
		ID:          i.ID,
		CustomerID:  customerID,
		Date:        i.Date,
		Kind:        string(i.Kind),
		Title:       i.Title,
		Description: i.Description,
		Author:      i.Author,
	}
}

func MapStoreInteractionToDomain(r store.InteractionRecord) domain.Interaction {
	return domain.Interaction{
		ID:          r.ID,
		Date:        r.Date,
		Kind:        domain.InteractionKind(r.Kind),
		Title:       r.Title,
		Description: r.Description,
		Author:      r.Author,
	}
}

func MapDomainProductToStore(p domain.Product) store.ProductRecord {
	return store.ProductRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		Kind:        string(p.Kind),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

func MapStoreProductToDomain(r store.ProductRecord) domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Kind:        domain.ProductKind(r.Kind),
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
	}
}

func MapDomainMetricPointToStore(p domain.MetricPoint) store.MetricPointRecord {
	return store.MetricPointRecord{
		Date:       p.Date,
		Revenue:    nullFloat(p.Revenue),
		Ticket:     nullFloat(p.Ticket),
		LTV:        nullFloat(p.LTV),
		CAC:        nullFloat(p.CAC),
		MRR:        nullFloat(p.MRR),
		ROI:        nullFloat(p.ROI),
		ChurnRate:  nullFloat(p.ChurnRate),
		UpsellRate: nullFloat(p.UpsellRate),
	}
}

func MapStoreMetricPointToDomain(r store.MetricPointRecord) domain.MetricPoint {
	return domain.MetricPoint{
		Date:       r.Date,
		Revenue:    floatPtr(r.Revenue),
		Ticket:     floatPtr(r.Ticket),
		LTV:        floatPtr(r.LTV),
		CAC:        floatPtr(r.CAC),
		MRR:        floatPtr(r.MRR),
		ROI:        floatPtr(r.ROI),
		ChurnRate:  floatPtr(r.ChurnRate),
		UpsellRate: floatPtr(r.UpsellRate),
	}
}

func MapDomainRecommendationToStore(position int, r domain.Recommendation) store.RecommendationRecord {
	return store.RecommendationRecord{
		ID:          r.ID,
		Position:    position,
		Kind:        string(r.Kind),
		Priority:    string(r.Priority),
		Title:       r.Title,
		Content:     r.Content,
		Resolved:    r.Resolved,
		GeneratedAt: r.GeneratedAt,
	}
}

func MapStoreRecommendationToDomain(r store.RecommendationRecord) domain.Recommendation {
	return domain.Recommendation{
		ID:          r.ID,
		Kind:        domain.RecommendationKind(r.Kind),
		Priority:    domain.Priority(r.Priority),
		Title:       r.Title,
		Content:     r.Content,
		Resolved:    r.Resolved,
		GeneratedAt: r.GeneratedAt,
	}
}

func MapDomainSnapshotRunToStore(r domain.SnapshotRun) store.SnapshotRun {
	return store.SnapshotRun{
		ID:         r.ID,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		PointDate:  r.PointDate,
		Error:      r.Error,
	}
}

func MapStoreSnapshotRunToDomain(r store.SnapshotRun) domain.SnapshotRun {
	return domain.SnapshotRun{
		ID:         r.ID,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		PointDate:  r.PointDate,
		Error:      r.Error,
	}
}
