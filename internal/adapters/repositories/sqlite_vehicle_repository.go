package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dispatch-service/internal/domain"
	"dispatch-service/internal/ports"
)

// SQLite-backed implementation of the VehicleRepository port.
type SqliteVehicleRepository struct{ DB *sql.DB }

func NewSqliteVehicleRepository(db *sql.DB) *SqliteVehicleRepository {
	return &SqliteVehicleRepository{DB: db}
}

// Persist a batch of vehicles in one transaction. Any duplicate identifier,
// in the batch or already stored, rolls the whole batch back.
func (s *SqliteVehicleRepository) SaveVehicles(ctx context.Context, vehicles []*domain.Vehicle) error {
	if s.DB == nil {
		return errors.New("sqlite vehicle repository: DB is nil")
	}
	if len(vehicles) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save vehicles: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existsStmt, err := tx.PrepareContext(ctx, `SELECT EXISTS (SELECT 1 FROM vehicles WHERE vehicle_id = ?);`)
	if err != nil {
		return fmt.Errorf("save vehicles: prepare exists check: %w", err)
	}
	defer existsStmt.Close()

	insertStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO vehicles (
		vehicle_id,
		capacity,
		current_latitude,
		current_longitude
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save vehicles: prepare insert: %w", err)
	}
	defer insertStmt.Close()

	for _, v := range vehicles {
		var exists bool
		if err := existsStmt.QueryRowContext(ctx, v.VehicleID).Scan(&exists); err != nil {
			return fmt.Errorf("save vehicles: exists check vehicle_id=%q: %w", v.VehicleID, err)
		}
		if exists {
			return fmt.Errorf("save vehicles: vehicle %q: %w", v.VehicleID, ports.ErrDuplicateID)
		}

		_, err := insertStmt.ExecContext(ctx,
			v.VehicleID, v.CapacityGrams, v.Position.Lat, v.Position.Lon,
		)
		if err != nil {
			return fmt.Errorf("save vehicles: insert vehicle_id=%q: %w", v.VehicleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save vehicles: commit tx: %w", err)
	}

	return nil
}

// Return all stored vehicles in insertion order.
func (s *SqliteVehicleRepository) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	SELECT
		vehicle_id,
		capacity,
		current_latitude,
		current_longitude
	FROM vehicles
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicles table: %w", err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0, 16)
	for rows.Next() {
		var (
			id       string
			capacity int
			lat, lon float64
		)
		if err := rows.Scan(&id, &capacity, &lat, &lon); err != nil {
			return nil, fmt.Errorf("list vehicles: scan row: %w", err)
		}

		vehicles = append(vehicles, &domain.Vehicle{
			VehicleID:     id,
			CapacityGrams: capacity,
			Position:      domain.Coordinates{Lat: lat, Lon: lon},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: row iteration: %w", err)
	}

	return vehicles, nil
}

// Remove all stored vehicles.
func (s *SqliteVehicleRepository) DeleteAllVehicles(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite vehicle repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM vehicles;`)
	if err != nil {
		return 0, fmt.Errorf("delete all vehicles: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete all vehicles: rows affected: %w", err)
	}

	return count, nil
}
