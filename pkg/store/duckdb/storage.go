package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

// DriverName is the registry name of the DuckDB record store.
const DriverName = "duckdb"

const ProductsTableSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		description VARCHAR,
		base_price DOUBLE NOT NULL,
		kind VARCHAR NOT NULL,
		active BOOLEAN NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
`

const CustomersTableSchema = `
	CREATE TABLE IF NOT EXISTS customers (
		id VARCHAR PRIMARY KEY,
		company VARCHAR,
		contact_name VARCHAR NOT NULL,
		email VARCHAR,
		phone VARCHAR,
		tax_id VARCHAR,
		lead_source VARCHAR,
		product_id VARCHAR,
		contract_value DOUBLE NULL,
		payment_method VARCHAR,
		down_payment DOUBLE NULL,
		installment_count INTEGER NULL,
		installment_value DOUBLE NULL,
		periodicity VARCHAR,
		start_date TIMESTAMP NULL,
		end_date TIMESTAMP NULL,
		status VARCHAR NOT NULL,
		nps INTEGER NULL,
		notes VARCHAR,
		created_at TIMESTAMP NOT NULL
	);
`

const InteractionsTableSchema = `
	CREATE TABLE IF NOT EXISTS interactions (
		id VARCHAR NOT NULL,
		customer_id VARCHAR NOT NULL,
		date TIMESTAMP NOT NULL,
		kind VARCHAR NOT NULL,
		title VARCHAR NOT NULL,
		description VARCHAR,
		author VARCHAR
	);
`

const MetricPointsTableSchema = `
	CREATE TABLE IF NOT EXISTS metric_points (
		date TIMESTAMP PRIMARY KEY,
		revenue DOUBLE NULL,
		ticket DOUBLE NULL,
		ltv DOUBLE NULL,
		cac DOUBLE NULL,
		mrr DOUBLE NULL,
		roi DOUBLE NULL,
		churn_rate DOUBLE NULL,
		upsell_rate DOUBLE NULL
	);
`

const RecommendationsTableSchema = `
	CREATE TABLE IF NOT EXISTS recommendations (
		id VARCHAR NOT NULL,
		position INTEGER NOT NULL,
		kind VARCHAR NOT NULL,
		priority VARCHAR NOT NULL,
		title VARCHAR NOT NULL,
		content VARCHAR,
		resolved BOOLEAN NOT NULL DEFAULT false,
		generated_at TIMESTAMP NOT NULL
	);
`

const SnapshotRunsTableSchema = `
	CREATE TABLE IF NOT EXISTS snapshot_runs (
		id VARCHAR PRIMARY KEY,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NULL,
		point_date TIMESTAMP NOT NULL,
		error VARCHAR NULL
	);
`

var bootQueries = []string{
	ProductsTableSchema,
	CustomersTableSchema,
	InteractionsTableSchema,
	MetricPointsTableSchema,
	RecommendationsTableSchema,
	SnapshotRunsTableSchema,
}

type Settings struct {
	DbPath  string
	Threads int
}

func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=%d", settings.DbPath, threads), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
