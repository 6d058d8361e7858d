package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"dispatch-service/internal/adapters/repositories"
	"dispatch-service/internal/api"
	"dispatch-service/internal/config"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite repositories) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	ordersSeedPath := config.Get("ORDERS_SEED_PATH", "data/seeds/orders.json")
	vehiclesSeedPath := config.Get("VEHICLES_SEED_PATH", "data/seeds/vehicles.json")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, ordersSeedPath, vehiclesSeedPath); err != nil {
		log.Fatal(err)
	}

	orderRepo := repositories.NewSqliteOrderRepository(db)
	vehicleRepo := repositories.NewSqliteVehicleRepository(db)
	router := api.NewRouter(orderRepo, vehicleRepo)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

// Seed files are optional: a missing file just means an empty store until
// the API receives data.
func initAndSeed(db *sql.DB, ordersSeedPath, vehiclesSeedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(ordersSeedPath); err == nil {
		if err := repositories.SeedOrdersFromJSON(db, ordersSeedPath); err != nil {
			return fmt.Errorf("init and seed: %w", err)
		}
	}

	if _, err := os.Stat(vehiclesSeedPath); err == nil {
		if err := repositories.SeedVehiclesFromJSON(db, vehiclesSeedPath); err != nil {
			return fmt.Errorf("init and seed: %w", err)
		}
	}

	return nil
}
