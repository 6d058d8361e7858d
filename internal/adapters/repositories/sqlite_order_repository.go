package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dispatch-service/internal/domain"
	"dispatch-service/internal/ports"
)

// SQLite-backed implementation of the OrderRepository port.
type SqliteOrderRepository struct{ DB *sql.DB }

func NewSqliteOrderRepository(db *sql.DB) *SqliteOrderRepository {
	return &SqliteOrderRepository{DB: db}
}

// Persist a batch of orders in one transaction. Any duplicate identifier,
// in the batch or already stored, rolls the whole batch back.
func (s *SqliteOrderRepository) SaveOrders(ctx context.Context, orders []*domain.Order) error {
	if s.DB == nil {
		return errors.New("sqlite order repository: DB is nil")
	}
	if len(orders) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existsStmt, err := tx.PrepareContext(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE order_id = ?);`)
	if err != nil {
		return fmt.Errorf("save orders: prepare exists check: %w", err)
	}
	defer existsStmt.Close()

	insertStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO orders (
		order_id,
		latitude,
		longitude,
		address,
		package_weight,
		priority
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save orders: prepare insert: %w", err)
	}
	defer insertStmt.Close()

	for _, o := range orders {
		var exists bool
		if err := existsStmt.QueryRowContext(ctx, o.OrderID).Scan(&exists); err != nil {
			return fmt.Errorf("save orders: exists check order_id=%q: %w", o.OrderID, err)
		}
		if exists {
			return fmt.Errorf("save orders: order %q: %w", o.OrderID, ports.ErrDuplicateID)
		}

		_, err := insertStmt.ExecContext(ctx,
			o.OrderID, o.Position.Lat, o.Position.Lon, o.Address, o.WeightGrams, string(o.Priority),
		)
		if err != nil {
			return fmt.Errorf("save orders: insert order_id=%q: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save orders: commit tx: %w", err)
	}

	return nil
}

// Return all stored orders in insertion order.
func (s *SqliteOrderRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite order repository: DB is nil")
	}

	query := `
	SELECT
		order_id,
		latitude,
		longitude,
		address,
		package_weight,
		priority
	FROM orders
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, 64)
	for rows.Next() {
		var (
			id, address, priority string
			lat, lon              float64
			weight                int
		)
		if err := rows.Scan(&id, &lat, &lon, &address, &weight, &priority); err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}

		p, err := domain.ParsePriority(priority)
		if err != nil {
			return nil, fmt.Errorf("list orders: order_id=%q: %w", id, err)
		}

		orders = append(orders, &domain.Order{
			OrderID:     id,
			Position:    domain.Coordinates{Lat: lat, Lon: lon},
			Address:     address,
			WeightGrams: weight,
			Priority:    p,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

// Remove all stored orders.
func (s *SqliteOrderRepository) DeleteAllOrders(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite order repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM orders;`)
	if err != nil {
		return 0, fmt.Errorf("delete all orders: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete all orders: rows affected: %w", err)
	}

	return count, nil
}
