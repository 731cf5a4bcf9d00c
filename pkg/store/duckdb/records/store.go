package records

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/adapters"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/models/store"
	"github.com/de-tools/growth-scorecard/pkg/services/source"
	"github.com/de-tools/growth-scorecard/pkg/store/duckdb"
)

const customerColumns = `
	id, COALESCE(company, ''), contact_name, COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(tax_id, ''), COALESCE(lead_source, ''), COALESCE(product_id, ''),
	contract_value, COALESCE(payment_method, ''), down_payment, installment_count, installment_value,
	COALESCE(periodicity, ''), start_date, end_date, status, nps, COALESCE(notes, ''), created_at`

const metricColumns = `date, revenue, ticket, ltv, cac, mrr, roi, churn_rate, upsell_rate`

// Store keeps the scorecard records in DuckDB. Writes join the transaction bound to the
// context when there is one.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Store{db: db}, nil
}

// Factory opens the database file named by dsn, ":memory:" included.
func Factory(ctx context.Context, dsn string) (source.Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("duckdb store requires a database path")
	}
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dsn})
	if err != nil {
		return nil, fmt.Errorf("open duckdb %s: %w", dsn, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping duckdb %s: %w", dsn, err)
	}
	return NewStore(db)
}

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	conn := duckdb.Conn(ctx, s.db)
	rows, err := conn.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	records, err := scanCustomerRows(rows)
	if err != nil {
		return nil, err
	}

	interactions, err := s.interactions(ctx, "")
	if err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(records))
	for _, r := range records {
		customers = append(customers, adapters.MapStoreCustomerToDomain(r, interactions[r.ID]))
	}
	return customers, nil
}

func (s *Store) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	conn := duckdb.Conn(ctx, s.db)
	rows, err := conn.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("query customer: %w", err)
	}
	records, err := scanCustomerRows(rows)
	if err != nil {
		return domain.Customer{}, err
	}
	if len(records) == 0 {
		return domain.Customer{}, domain.NewNotFoundError("customer", id)
	}

	interactions, err := s.interactions(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}
	return adapters.MapStoreCustomerToDomain(records[0], interactions[id]), nil
}

// interactions loads interaction rows grouped by customer, for one customer when id is set.
func (s *Store) interactions(ctx context.Context, id string) (map[string][]store.InteractionRecord, error) {
	query := `
		SELECT id, customer_id, date, kind, title, COALESCE(description, ''), COALESCE(author, '')
		FROM interactions`
	var args []any
	if id != "" {
		query += ` WHERE customer_id = ?`
		args = append(args, id)
	}
	query += ` ORDER BY date DESC, id`

	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	grouped := map[string][]store.InteractionRecord{}
	for rows.Next() {
		var r store.InteractionRecord
		if err := rows.Scan(&r.ID, &r.CustomerID, &r.Date, &r.Kind, &r.Title, &r.Description, &r.Author); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		grouped[r.CustomerID] = append(grouped[r.CustomerID], r)
	}
	return grouped, rows.Err()
}

func scanCustomerRows(rows *sql.Rows) ([]store.CustomerRecord, error) {
	defer rows.Close()

	records := make([]store.CustomerRecord, 0)
	for rows.Next() {
		var r store.CustomerRecord
		if err := rows.Scan(
			&r.ID, &r.Company, &r.ContactName, &r.Email, &r.Phone,
			&r.TaxID, &r.LeadSource, &r.ProductID,
			&r.ContractValue, &r.PaymentMethod, &r.DownPayment, &r.InstallmentCount, &r.InstallmentValue,
			&r.Periodicity, &r.StartDate, &r.EndDate, &r.Status, &r.NPS, &r.Notes, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) SaveCustomer(ctx context.Context, c domain.Customer) error {
	r := adapters.MapDomainCustomerToStore(c)

	return duckdb.RunInTransaction(ctx, s.db, func(ctx context.Context) error {
		conn := duckdb.Conn(ctx, s.db)
		_, err := conn.ExecContext(ctx, `
			INSERT OR REPLACE INTO customers (
				id, company, contact_name, email, phone, tax_id, lead_source, product_id,
				contract_value, payment_method, down_payment, installment_count, installment_value,
				periodicity, start_date, end_date, status, nps, notes, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Company, r.ContactName, r.Email, r.Phone, r.TaxID, r.LeadSource, r.ProductID,
			r.ContractValue, r.PaymentMethod, r.DownPayment, r.InstallmentCount, r.InstallmentValue,
			r.Periodicity, r.StartDate, r.EndDate, r.Status, r.NPS, r.Notes, r.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("upsert customer %s: %w", c.ID, err)
		}

		if _, err := conn.ExecContext(ctx, `DELETE FROM interactions WHERE customer_id = ?`, c.ID); err != nil {
			return fmt.Errorf("clear interactions of %s: %w", c.ID, err)
		}
		for _, i := range c.Interactions {
			ir := adapters.MapDomainInteractionToStore(c.ID, i)
			_, err := conn.ExecContext(ctx, `
				INSERT INTO interactions (id, customer_id, date, kind, title, description, author)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				ir.ID, ir.CustomerID, ir.Date, ir.Kind, ir.Title, ir.Description, ir.Author,
			)
			if err != nil {
				return fmt.Errorf("insert interaction %s: %w", ir.ID, err)
			}
		}
		return nil
	})
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	return duckdb.RunInTransaction(ctx, s.db, func(ctx context.Context) error {
		conn := duckdb.Conn(ctx, s.db)
		res, err := conn.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete customer %s: %w", id, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return domain.NewNotFoundError("customer", id)
		}
		if _, err := conn.ExecContext(ctx, `DELETE FROM interactions WHERE customer_id = ?`, id); err != nil {
			return fmt.Errorf("delete interactions of %s: %w", id, err)
		}
		return nil
	})
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.queryProducts(ctx, `ORDER BY created_at, id`)
}

func (s *Store) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	products, err := s.queryProducts(ctx, `WHERE id = ?`, id)
	if err != nil {
		return domain.Product{}, err
	}
	if len(products) == 0 {
		return domain.Product{}, domain.NewNotFoundError("product", id)
	}
	return products[0], nil
}

func (s *Store) queryProducts(ctx context.Context, clause string, args ...any) ([]domain.Product, error) {
	query := `SELECT id, name, COALESCE(description, ''), base_price, kind, active, created_at FROM products ` + clause
	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var r store.ProductRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.BasePrice, &r.Kind, &r.Active, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, adapters.MapStoreProductToDomain(r))
	}
	return products, rows.Err()
}

func (s *Store) SaveProduct(ctx context.Context, p domain.Product) error {
	r := adapters.MapDomainProductToStore(p)
	_, err := duckdb.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT OR REPLACE INTO products (id, name, description, base_price, kind, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Description, r.BasePrice, r.Kind, r.Active, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert product %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) ListMetricPoints(ctx context.Context, from, to time.Time) ([]domain.MetricPoint, error) {
	var (
		conditions []string
		args       []any
	)
	if !from.IsZero() {
		conditions = append(conditions, "date >= ?")
		args = append(args, from)
	}
	if !to.IsZero() {
		conditions = append(conditions, "date <= ?")
		args = append(args, to)
	}

	query := `SELECT ` + metricColumns + ` FROM metric_points`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY date`

	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query metric points: %w", err)
	}
	defer rows.Close()

	points := make([]domain.MetricPoint, 0)
	for rows.Next() {
		var r store.MetricPointRecord
		if err := rows.Scan(&r.Date, &r.Revenue, &r.Ticket, &r.LTV, &r.CAC, &r.MRR, &r.ROI, &r.ChurnRate, &r.UpsellRate); err != nil {
			return nil, fmt.Errorf("scan metric point: %w", err)
		}
		points = append(points, adapters.MapStoreMetricPointToDomain(r))
	}
	return points, rows.Err()
}

func (s *Store) AddMetricPoints(ctx context.Context, points ...domain.MetricPoint) error {
	if len(points) == 0 {
		return nil
	}

	return duckdb.RunInTransaction(ctx, s.db, func(ctx context.Context) error {
		conn := duckdb.Conn(ctx, s.db)
		for _, p := range points {
			r := adapters.MapDomainMetricPointToStore(p)
			_, err := conn.ExecContext(ctx, `
				INSERT OR REPLACE INTO metric_points (`+metricColumns+`)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				r.Date, r.Revenue, r.Ticket, r.LTV, r.CAC, r.MRR, r.ROI, r.ChurnRate, r.UpsellRate,
			)
			if err != nil {
				return fmt.Errorf("insert metric point %s: %w", p.Date.Format(time.DateOnly), err)
			}
		}
		return nil
	})
}

func (s *Store) ListRecommendations(ctx context.Context) ([]domain.Recommendation, error) {
	return s.queryRecommendations(ctx, `ORDER BY position`)
}

func (s *Store) queryRecommendations(ctx context.Context, clause string, args ...any) ([]domain.Recommendation, error) {
	query := `
		SELECT id, position, kind, priority, title, COALESCE(content, ''), resolved, generated_at
		FROM recommendations ` + clause
	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	recs := make([]domain.Recommendation, 0)
	for rows.Next() {
		var r store.RecommendationRecord
		if err := rows.Scan(&r.ID, &r.Position, &r.Kind, &r.Priority, &r.Title, &r.Content, &r.Resolved, &r.GeneratedAt); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		recs = append(recs, adapters.MapStoreRecommendationToDomain(r))
	}
	return recs, rows.Err()
}

func (s *Store) ReplaceRecommendations(ctx context.Context, recs []domain.Recommendation) error {
	return duckdb.RunInTransaction(ctx, s.db, func(ctx context.Context) error {
		conn := duckdb.Conn(ctx, s.db)
		if _, err := conn.ExecContext(ctx, `DELETE FROM recommendations`); err != nil {
			return fmt.Errorf("clear recommendations: %w", err)
		}
		for i, rec := range recs {
			r := adapters.MapDomainRecommendationToStore(i, rec)
			_, err := conn.ExecContext(ctx, `
				INSERT INTO recommendations (id, position, kind, priority, title, content, resolved, generated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				r.ID, r.Position, r.Kind, r.Priority, r.Title, r.Content, r.Resolved, r.GeneratedAt,
			)
			if err != nil {
				return fmt.Errorf("insert recommendation %s: %w", r.ID, err)
			}
		}
		return nil
	})
}

func (s *Store) ToggleResolved(ctx context.Context, id string) (domain.Recommendation, error) {
	var updated domain.Recommendation
	err := duckdb.RunInTransaction(ctx, s.db, func(ctx context.Context) error {
		res, err := duckdb.Conn(ctx, s.db).ExecContext(ctx,
			`UPDATE recommendations SET resolved = NOT resolved WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("update recommendation %s: %w", id, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return domain.NewNotFoundError("recommendation", id)
		}

		recs, err := s.queryRecommendations(ctx, `WHERE id = ?`, id)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			return domain.NewNotFoundError("recommendation", id)
		}
		updated = recs[0]
		return nil
	})
	if err != nil {
		return domain.Recommendation{}, err
	}
	return updated, nil
}
