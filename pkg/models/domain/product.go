package domain

import (
	"strings"
	"time"
)

type ProductKind string

const (
	ProductKindService ProductKind = "service"
	ProductKindProduct ProductKind = "product"
	ProductKindPlan    ProductKind = "plan"
)

type Product struct {
	ID          string
	Name        string
	Description string
	BasePrice   float64
	Kind        ProductKind
	Active      bool
	CreatedAt   time.Time
}

func (p Product) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(p.Name) == "" {
		errs.Add("name", "is required")
	}
	if p.BasePrice < 0 {
		errs.Add("base_price", "must not be negative")
	}
	switch p.Kind {
	case ProductKindService, ProductKindProduct, ProductKindPlan:
	default:
		errs.Add("kind", "unknown product kind")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}
