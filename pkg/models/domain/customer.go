package domain

import (
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentCash                PaymentMethod = "cash"
	PaymentCreditCardFull      PaymentMethod = "credit-card-full"
	PaymentCreditCardRecurring PaymentMethod = "credit-card-recurring"
	PaymentPixInstallments     PaymentMethod = "pix-installments"
	PaymentBoletoInstallments  PaymentMethod = "boleto-installments"
)

// IsRecurring reports whether the method bills the customer on every period.
func (p PaymentMethod) IsRecurring() bool {
	return strings.HasSuffix(string(p), "-recurring")
}

// HasInstallments reports whether the contract value is split into installments.
func (p PaymentMethod) HasInstallments() bool {
	return strings.HasSuffix(string(p), "-installments")
}

// UsesInstallmentFields reports whether installment count/value are meaningful for the method.
func (p PaymentMethod) UsesInstallmentFields() bool {
	return p.IsRecurring() || p.HasInstallments()
}

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCreditCardFull, PaymentCreditCardRecurring,
		PaymentPixInstallments, PaymentBoletoInstallments:
		return true
	}
	return false
}

type Periodicity string

const (
	PeriodicityMonthly   Periodicity = "monthly"
	PeriodicityQuarterly Periodicity = "quarterly"
	PeriodicityYearly    Periodicity = "yearly"
)

// MonthlyDivisor converts a contract value billed with this periodicity into a monthly figure.
// Unknown or empty periodicity is treated as monthly.
func (p Periodicity) MonthlyDivisor() float64 {
	switch p {
	case PeriodicityYearly:
		return 12
	case PeriodicityQuarterly:
		return 3
	default:
		return 1
	}
}

func (p Periodicity) Valid() bool {
	switch p {
	case PeriodicityMonthly, PeriodicityQuarterly, PeriodicityYearly:
		return true
	}
	return false
}

// CustomerStatus is the stored lifecycle state of a customer.
type CustomerStatus string

const (
	StatusActive     CustomerStatus = "active"
	StatusAtRisk     CustomerStatus = "at-risk"
	StatusCanceled   CustomerStatus = "canceled"
	StatusDelinquent CustomerStatus = "delinquent"
	StatusFinalized  CustomerStatus = "finalized"
)

func (s CustomerStatus) Valid() bool {
	switch s {
	case StatusActive, StatusAtRisk, StatusCanceled, StatusDelinquent, StatusFinalized:
		return true
	}
	return false
}

// ClientStatus is the effective status derived from the stored status and the contract dates.
// It shares the value set of CustomerStatus but is never persisted.
type ClientStatus string

const (
	ClientActive     ClientStatus = "active"
	ClientAtRisk     ClientStatus = "at-risk"
	ClientCanceled   ClientStatus = "canceled"
	ClientDelinquent ClientStatus = "delinquent"
	ClientFinalized  ClientStatus = "finalized"
)

type InteractionKind string

const (
	InteractionMeeting   InteractionKind = "meeting"
	InteractionContact   InteractionKind = "contact"
	InteractionDelivery  InteractionKind = "delivery"
	InteractionFeedback  InteractionKind = "feedback"
	InteractionRenewal   InteractionKind = "renewal"
	InteractionFinancial InteractionKind = "financial"
	InteractionOther     InteractionKind = "other"
)

type Interaction struct {
	ID          string
	Date        time.Time
	Kind        InteractionKind
	Title       string
	Description string
	Author      string
}

// Customer is one contracted business relationship.
type Customer struct {
	ID          string
	Company     string
	ContactName string
	Email       string
	Phone       string
	TaxID       string // CNPJ
	LeadSource  string
	ProductID   string

	ContractValue    *float64
	PaymentMethod    PaymentMethod
	DownPayment      *float64
	InstallmentCount *int
	InstallmentValue *float64
	Periodicity      Periodicity

	StartDate *time.Time
	EndDate   *time.Time
	Status    CustomerStatus
	NPS       *int

	Notes        string
	Interactions []Interaction
	CreatedAt    time.Time
}

// Validate checks the record-creation invariants. The calculation functions assume
// they hold and never call it.
func (c Customer) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(c.ContactName) == "" {
		errs.Add("contact_name", "is required")
	}
	if c.ContractValue != nil && *c.ContractValue < 0 {
		errs.Add("contract_value", "must not be negative")
	}
	if c.NPS != nil && (*c.NPS < 0 || *c.NPS > 10) {
		errs.Add("nps", "must be between 0 and 10")
	}
	if c.PaymentMethod != "" && !c.PaymentMethod.Valid() {
		errs.Add("payment_method", "unknown payment method")
	}
	if c.Periodicity != "" && !c.Periodicity.Valid() {
		errs.Add("periodicity", "unknown periodicity")
	}
	if !c.Status.Valid() {
		errs.Add("status", "unknown status")
	}
	if c.InstallmentCount != nil && *c.InstallmentCount <= 0 {
		errs.Add("installment_count", "must be positive")
	}
	if c.InstallmentValue != nil && *c.InstallmentValue <= 0 {
		errs.Add("installment_value", "must be positive")
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		errs.Add("end_date", "must not precede start_date")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Float and Int build optional fields inline.
func Float(v float64) *float64 { return &v }

func Int(v int) *int { return &v }

func Date(t time.Time) *time.Time { return &t }
