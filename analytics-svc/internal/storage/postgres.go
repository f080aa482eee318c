package storage

import (
	"context"
	"database/sql"

	"overcooked-analytics/analytics-svc/internal/domain"
)

// PostgresSource reads order lines out of the ordering schema (orders, order_items,
// dishes, restaurants) as an alternative to the text log.
type PostgresSource struct {
	DB *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{DB: db}
}

// ListOrderRecords returns one record per ordered unit, oldest first. An item with
// quantity 3 yields three records. limit caps the number of item rows read.
func (s *PostgresSource) ListOrderRecords(ctx context.Context, limit int) ([]domain.OrderRecord, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT o.created_at, r.name, d.name, oi.price, oi.quantity
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		JOIN dishes d ON oi.dish_id = d.id
		JOIN restaurants r ON o.restaurant_id = r.id
		ORDER BY o.created_at, oi.id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.OrderRecord
	for rows.Next() {
		var rec domain.OrderRecord
		var quantity int
		if err := rows.Scan(&rec.CreatedAt, &rec.Restaurant, &rec.Dish, &rec.Price, &quantity); err != nil {
			continue
		}
		for i := 0; i < max(quantity, 1); i++ {
			records = append(records, rec)
		}
	}
	return records, rows.Err()
}
