package seed

import (
	"slices"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
)

// The memory store hands out and keeps deep copies so callers never share its pointers.

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneCustomer(c domain.Customer) domain.Customer {
	c.ContractValue = clonePtr(c.ContractValue)
	c.DownPayment = clonePtr(c.DownPayment)
	c.InstallmentCount = clonePtr(c.InstallmentCount)
	c.InstallmentValue = clonePtr(c.InstallmentValue)
	c.StartDate = clonePtr(c.StartDate)
	c.EndDate = clonePtr(c.EndDate)
	c.NPS = clonePtr(c.NPS)
	c.Interactions = slices.Clone(c.Interactions)
	return c
}

func clonePoint(p domain.MetricPoint) domain.MetricPoint {
	p.Revenue = clonePtr(p.Revenue)
	p.Ticket = clonePtr(p.Ticket)
	p.LTV = clonePtr(p.LTV)
	p.CAC = clonePtr(p.CAC)
	p.MRR = clonePtr(p.MRR)
	p.ROI = clonePtr(p.ROI)
	p.ChurnRate = clonePtr(p.ChurnRate)
	p.UpsellRate = clonePtr(p.UpsellRate)
	return p
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}
