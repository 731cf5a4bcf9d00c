package api

import "time"

type Interaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author,omitempty"`
}

type Customer struct {
	ID               string        `json:"id"`
	Company          string        `json:"company,omitempty"`
	ContactName      string        `json:"contact_name"`
	Email            string        `json:"email,omitempty"`
	Phone            string        `json:"phone,omitempty"`
	TaxID            string        `json:"tax_id,omitempty"`
	LeadSource       string        `json:"lead_source,omitempty"`
	ProductID        string        `json:"product_id,omitempty"`
	ContractValue    *float64      `json:"contract_value"`
	PaymentMethod    string        `json:"payment_method,omitempty"`
	DownPayment      *float64      `json:"down_payment,omitempty"`
	InstallmentCount *int          `json:"installment_count,omitempty"`
	InstallmentValue *float64      `json:"installment_value,omitempty"`
	Periodicity      string        `json:"periodicity,omitempty"`
	StartDate        *time.Time    `json:"start_date"`
	EndDate          *time.Time    `json:"end_date"`
	Status           string        `json:"status"`
	ResolvedStatus   string        `json:"resolved_status"`
	NPS              *int          `json:"nps"`
	Notes            string        `json:"notes,omitempty"`
	Interactions     []Interaction `json:"interactions,omitempty"`
	Product          *Product      `json:"product,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

type CustomerDetail struct {
	Customer
	LTV              float64                `json:"ltv"`
	RelationshipDays int                    `json:"relationship_days"`
	MonthsActive     int                    `json:"months_active"`
	Ascension        *float64               `json:"ascension"`
	Recommendations  []ClientRecommendation `json:"recommendations"`
}

type InteractionRequest struct {
	Date        time.Time `json:"date" validate:"required"`
	Kind        string    `json:"kind" validate:"required,oneof=meeting contact delivery feedback renewal financial other"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
}

// CustomerRequest is the create/update payload. Cross-field rules that depend on the payment
// method are checked by domain.Customer.Validate.
type CustomerRequest struct {
	Company          string               `json:"company"`
	ContactName      string               `json:"contact_name" validate:"required"`
	Email            string               `json:"email" validate:"omitempty,email"`
	Phone            string               `json:"phone"`
	TaxID            string               `json:"tax_id"`
	LeadSource       string               `json:"lead_source"`
	ProductID        string               `json:"product_id"`
	ContractValue    *float64             `json:"contract_value" validate:"omitempty,gte=0"`
	PaymentMethod    string               `json:"payment_method" validate:"omitempty,oneof=cash credit-card-full credit-card-recurring pix-installments boleto-installments"`
	DownPayment      *float64             `json:"down_payment" validate:"omitempty,gte=0"`
	InstallmentCount *int                 `json:"installment_count" validate:"omitempty,gt=0"`
	InstallmentValue *float64             `json:"installment_value" validate:"omitempty,gt=0"`
	Periodicity      string               `json:"periodicity" validate:"omitempty,oneof=monthly quarterly yearly"`
	StartDate        *time.Time           `json:"start_date"`
	EndDate          *time.Time           `json:"end_date"`
	Status           string               `json:"status" validate:"required,oneof=active at-risk canceled delinquent finalized"`
	NPS              *int                 `json:"nps" validate:"omitempty,min=0,max=10"`
	Notes            string               `json:"notes"`
	Interactions     []InteractionRequest `json:"interactions" validate:"dive"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BasePrice   float64   `json:"base_price"`
	Kind        string    `json:"kind"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" validate:"gte=0"`
	Kind        string  `json:"kind" validate:"required,oneof=service product plan"`
	Active      *bool   `json:"active"`
}
