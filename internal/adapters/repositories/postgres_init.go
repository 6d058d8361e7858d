package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"dispatch-service/internal/domain"
)

// Initialize the Postgres database schema. Postgres gets its own
// statements: placeholders and serial columns differ from SQLite.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		seq BIGSERIAL PRIMARY KEY,
		order_id TEXT NOT NULL UNIQUE,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		package_weight INTEGER NOT NULL,
		priority TEXT NOT NULL
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		seq BIGSERIAL PRIMARY KEY,
		vehicle_id TEXT NOT NULL UNIQUE,
		capacity INTEGER NOT NULL,
		current_latitude DOUBLE PRECISION NOT NULL,
		current_longitude DOUBLE PRECISION NOT NULL
	);
	`

	statements := []string{
		createOrdersQuery,
		createVehiclesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres orders table from the same JSON seed format the
// SQLite seeder uses.
func SeedPostgresOrdersFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed postgres orders: read %q: %w", jsonPath, err)
	}

	var data []OrderSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed postgres orders: parse json: %w", err)
	}

	for _, item := range data {
		if _, err := domain.ParsePriority(item.Priority); err != nil {
			return fmt.Errorf("seed postgres orders: order_id=%q: %w", item.OrderID, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed postgres orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO orders (order_id, latitude, longitude, address, package_weight, priority)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (order_id) DO UPDATE
	SET latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		address = EXCLUDED.address,
		package_weight = EXCLUDED.package_weight,
		priority = EXCLUDED.priority;
	`)
	if err != nil {
		return fmt.Errorf("seed postgres orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range data {
		if _, err := stmt.Exec(o.OrderID, o.Latitude, o.Longitude, o.Address, o.PackageWeight, o.Priority); err != nil {
			return fmt.Errorf("seed postgres orders: insert order_id=%q: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres orders: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres vehicles table from the JSON seed format.
func SeedPostgresVehiclesFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed postgres vehicles: read %q: %w", jsonPath, err)
	}

	var data []VehicleSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed postgres vehicles: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed postgres vehicles: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO vehicles (vehicle_id, capacity, current_latitude, current_longitude)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (vehicle_id) DO UPDATE
	SET capacity = EXCLUDED.capacity,
		current_latitude = EXCLUDED.current_latitude,
		current_longitude = EXCLUDED.current_longitude;
	`)
	if err != nil {
		return fmt.Errorf("seed postgres vehicles: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range data {
		if _, err := stmt.Exec(v.VehicleID, v.Capacity, v.CurrentLatitude, v.CurrentLongitude); err != nil {
			return fmt.Errorf("seed postgres vehicles: insert vehicle_id=%q: %w", v.VehicleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres vehicles: commit tx: %w", err)
	}

	return nil
}
