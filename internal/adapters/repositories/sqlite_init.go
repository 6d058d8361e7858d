package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"dispatch-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// seq preserves insertion order; the planner's tie-breaking depends on it.
	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id TEXT NOT NULL UNIQUE,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		package_weight INTEGER NOT NULL,
		priority TEXT NOT NULL
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		vehicle_id TEXT NOT NULL UNIQUE,
		capacity INTEGER NOT NULL,
		current_latitude REAL NOT NULL,
		current_longitude REAL NOT NULL
	);
	`

	statements := []string{
		createOrdersQuery,
		createVehiclesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type OrderSeed struct {
	OrderID       string  `json:"order_id"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Address       string  `json:"address"`
	PackageWeight int     `json:"package_weight"`
	Priority      string  `json:"priority"`
}

type VehicleSeed struct {
	VehicleID        string  `json:"vehicle_id"`
	Capacity         int     `json:"capacity"`
	CurrentLatitude  float64 `json:"current_latitude"`
	CurrentLongitude float64 `json:"current_longitude"`
}

// Populate the orders table from a JSON file. Existing rows with the same
// order_id are replaced, so seeding is idempotent for local runs.
func SeedOrdersFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed orders: read %q: %w", jsonPath, err)
	}

	var data []OrderSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed orders: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.OrderID) == "" {
			return fmt.Errorf("seed orders: item at index %d: order_id cannot be empty", i+1)
		}
		if item.PackageWeight <= 0 {
			return fmt.Errorf("seed orders: order_id=%q: invalid package_weight %d", item.OrderID, item.PackageWeight)
		}
		if _, err := domain.ParsePriority(item.Priority); err != nil {
			return fmt.Errorf("seed orders: order_id=%q: %w", item.OrderID, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO orders (
		order_id,
		latitude,
		longitude,
		address,
		package_weight,
		priority
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range data {
		if _, err := stmt.Exec(o.OrderID, o.Latitude, o.Longitude, o.Address, o.PackageWeight, o.Priority); err != nil {
			return fmt.Errorf("seed orders: insert order_id=%q: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return nil
}

// Populate the vehicles table from a JSON file.
func SeedVehiclesFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed vehicles: read %q: %w", jsonPath, err)
	}

	var data []VehicleSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed vehicles: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.VehicleID) == "" {
			return fmt.Errorf("seed vehicles: item at index %d: vehicle_id cannot be empty", i+1)
		}
		if item.Capacity <= 0 {
			return fmt.Errorf("seed vehicles: vehicle_id=%q: invalid capacity %d", item.VehicleID, item.Capacity)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed vehicles: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO vehicles (
		vehicle_id,
		capacity,
		current_latitude,
		current_longitude
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed vehicles: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range data {
		if _, err := stmt.Exec(v.VehicleID, v.Capacity, v.CurrentLatitude, v.CurrentLongitude); err != nil {
			return fmt.Errorf("seed vehicles: insert vehicle_id=%q: %w", v.VehicleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed vehicles: commit tx: %w", err)
	}

	return nil
}
