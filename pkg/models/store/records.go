package store

import (
	"database/sql"
	"time"
)

type CustomerRecord struct {
	ID               string
	Company          string
	ContactName      string
	Email            string
	Phone            string
	TaxID            string
	LeadSource       string
	ProductID        string
	ContractValue    sql.NullFloat64
	PaymentMethod    string
	DownPayment      sql.NullFloat64
	InstallmentCount sql.NullInt64
	InstallmentValue sql.NullFloat64
	Periodicity      string
	StartDate        sql.NullTime
	EndDate          sql.NullTime
	Status           string
	NPS              sql.NullInt64
	Notes            string
	CreatedAt        time.Time
}

type InteractionRecord struct {
	ID          string
	CustomerID  string
	Date        time.Time
	Kind        string
	Title       string
	Description string
	Author      string
}

type ProductRecord struct {
	ID          string
	Name        string
	Description string
	BasePrice   float64
	Kind        string
	Active      bool
	CreatedAt   time.Time
}

type MetricPointRecord struct {
	Date       time.Time
	Revenue    sql.NullFloat64
	Ticket     sql.NullFloat64
	LTV        sql.NullFloat64
	CAC        sql.NullFloat64
	MRR        sql.NullFloat64
	ROI        sql.NullFloat64
	ChurnRate  sql.NullFloat64
	UpsellRate sql.NullFloat64
}

type RecommendationRecord struct {
	ID          string
	Position    int
	Kind        string
	Priority    string
	Title       string
	Content     string
	Resolved    bool
	GeneratedAt time.Time
}
