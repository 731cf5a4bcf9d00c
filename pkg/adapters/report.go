package adapters

import (
	"fmt"

	"github.com/de-tools/growth-scorecard/pkg/format"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
)

func MapDomainPeriodToReport(p domain.Period) domain.TimePeriod {
	return domain.TimePeriod{Start: p.From, End: p.To, Duration: p.Days()}
}

// MapScorecardToReport lays a scorecard out for the terminal reporters.
func MapScorecardToReport(sc domain.Scorecard) *domain.Report {
	kpis := domain.ReportSection{
		Title: "Key indicators",
		Summary: map[string]any{
			"MRR":           format.BRL(sc.MRR),
			"Revenue trend": format.Delta(sc.RevenueDelta),
		},
	}
	if sc.Objective != domain.ObjectiveNone {
		kpis.Summary["Objective"] = string(sc.Objective)
	}
	for _, k := range sc.KPIs {
		detail := domain.ReportDetail{
			Name:  k.Title,
			Value: FormatKPI(k),
			Unit:  string(k.Unit),
		}
		if k.Delta != nil {
			detail.Description = "vs previous period: " + format.Delta(*k.Delta)
		}
		kpis.Details = append(kpis.Details, detail)
	}

	highlights := domain.ReportSection{
		Title:   "Highlights",
		Summary: map[string]any{"Shown": len(sc.Highlights)},
	}
	for _, r := range sc.Highlights {
		highlights.Details = append(highlights.Details, domain.ReportDetail{
			Name:        r.Title,
			Value:       string(r.Priority),
			Unit:        string(r.Kind),
			Description: r.Content,
		})
	}

	return &domain.Report{
		Title:  "Growth scorecard",
		Period: MapDomainPeriodToReport(sc.Period),
		Headline: fmt.Sprintf("Health %d/100 (%s)",
			sc.Health.Score, sc.Health.Classification),
		Sections: []domain.ReportSection{kpis, highlights},
	}
}

// MapCustomersToReport lists customers with their resolved status.
func MapCustomersToReport(views []domain.CustomerView, period domain.Period) *domain.Report {
	section := domain.ReportSection{
		Title:   "Customers",
		Summary: map[string]any{"Total": len(views)},
	}
	for _, v := range views {
		c := v.Customer
		name := c.Company
		if name == "" {
			name = c.ContactName
		}
		product := ""
		if v.Product != nil {
			product = v.Product.Name
		}
		contract := "no contract value"
		if c.ContractValue != nil {
			contract = format.BRL(*c.ContractValue)
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        name,
			Value:       string(v.ResolvedStatus),
			Unit:        c.ID,
			Description: fmt.Sprintf("%s, %s, %s", c.ContactName, product, contract),
		})
	}

	return &domain.Report{
		Title:    "Customers",
		Period:   MapDomainPeriodToReport(period),
		Headline: fmt.Sprintf("%d customers", len(views)),
		Sections: []domain.ReportSection{section},
	}
}

// MapCustomerDetailToReport shows one customer together with its recommendations.
func MapCustomerDetailToReport(d domain.CustomerDetail, period domain.Period) *domain.Report {
	c := d.Customer
	profile := domain.ReportSection{
		Title: c.ContactName,
		Summary: map[string]any{
			"Status":            string(d.ResolvedStatus),
			"LTV":               format.BRL(d.LTV),
			"Relationship days": d.RelationshipDays,
		},
	}
	if d.Ascension != nil {
		profile.Summary["Ascension"] = format.Percent(*d.Ascension)
	}

	recs := domain.ReportSection{
		Title:   "Recommendations",
		Summary: map[string]any{"Count": len(d.Recommendations)},
	}
	for _, r := range d.Recommendations {
		recs.Details = append(recs.Details, domain.ReportDetail{
			Name:        string(r.Type),
			Value:       string(r.Priority),
			Description: r.Title,
		})
	}

	return &domain.Report{
		Title:    "Customer " + c.ID,
		Period:   MapDomainPeriodToReport(period),
		Headline: c.Company,
		Sections: []domain.ReportSection{profile, recs},
	}
}

// MapBoardToReport lists system recommendations with their resolution state.
func MapBoardToReport(recs []domain.Recommendation, period domain.Period) *domain.Report {
	open := 0
	section := domain.ReportSection{Title: "Board"}
	for _, r := range recs {
		state := "open"
		if r.Resolved {
			state = "resolved"
		} else {
			open++
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        r.Title,
			Value:       string(r.Priority),
			Unit:        string(r.Kind),
			Description: state + ": " + r.Content,
		})
	}
	section.Summary = map[string]any{"Open": open, "Resolved": len(recs) - open}

	return &domain.Report{
		Title:    "Recommendations",
		Period:   MapDomainPeriodToReport(period),
		Headline: fmt.Sprintf("%d recommendations", len(recs)),
		Sections: []domain.ReportSection{section},
	}
}
