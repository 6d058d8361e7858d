package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	"dispatch-service/internal/adapters/repositories"
	"dispatch-service/internal/config"
	"dispatch-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes and seeds a Postgres database with the dispatch
// schema, for deployments that outgrow the embedded SQLite store.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ordersSeedPath := config.Get("ORDERS_SEED_PATH", "data/seeds/orders.json")
	vehiclesSeedPath := config.Get("VEHICLES_SEED_PATH", "data/seeds/vehicles.json")
	initAndSeed(db, ordersSeedPath, vehiclesSeedPath)
}

func initAndSeed(db *sql.DB, ordersSeedPath, vehiclesSeedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedPostgresOrdersFromJSON(db, ordersSeedPath); err != nil {
		log.Fatalf("seeding orders failed: %v", err)
	}
	if err := repositories.SeedPostgresVehiclesFromJSON(db, vehiclesSeedPath); err != nil {
		log.Fatalf("seeding vehicles failed: %v", err)
	}
	log.Println("Seeding complete.")
}
