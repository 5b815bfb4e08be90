// Seeds the database with sample data for local development. Expects the
// schema to exist already; run the app once to apply migrations first.
package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"

	"github.com/google/uuid"
)

const (
	ownerCount          = 10
	ordersPerOwner      = 10
	productCount        = 20
	shipmentOrderCount  = 50
	shipmentOrderUserID = 100
)

var typeTags = []string{"A", "B", "C", "D"}

var shipmentStatuses = []string{"pending", "processing", "paid", "canceled"}

func main() {
	db := mustOpenDB()
	defer db.Close()

	seedStocks(db)
	seedShipmentOrders(db)
	seedOrders(db)

	log.Info("Seeding complete")
}

func mustOpenDB() *sql.DB {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_SSLMODE"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func seedStocks(db *sql.DB) {
	for productID := 1; productID <= productCount; productID++ {
		_, err := db.Exec(`
			INSERT INTO stocks (product_id, available)
			VALUES ($1, $2)
			ON CONFLICT (product_id) DO NOTHING`,
			productID, rand.Intn(10))
		if err != nil {
			log.Fatalf("Error seeding stocks: %v", err)
		}
	}
	log.Infof("Seeded %d stock rows", productCount)
}

func seedShipmentOrders(db *sql.DB) {
	for id := 1; id <= shipmentOrderCount; id++ {
		_, err := db.Exec(`
			INSERT INTO shipment_orders (id, user_id, status, product_id, quantity, total)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING`,
			id,
			rand.Intn(shipmentOrderUserID)+1,
			shipmentStatuses[rand.Intn(len(shipmentStatuses))],
			rand.Intn(productCount)+1,
			rand.Intn(5)+1,
			float64(rand.Intn(30000))/100)
		if err != nil {
			log.Fatalf("Error seeding shipment orders: %v", err)
		}
	}
	log.Infof("Seeded %d shipment orders", shipmentOrderCount)
}

func seedOrders(db *sql.DB) {
	total := 0
	for ownerID := 1; ownerID <= ownerCount; ownerID++ {
		for i := 0; i < ordersPerOwner; i++ {
			_, err := db.Exec(`
				INSERT INTO orders (id, owner_id, type_tag, amount, flag, status, priority)
				VALUES ($1, $2, $3, $4, $5, 0, 0)
				ON CONFLICT (id) DO NOTHING`,
				uuid.New(),
				ownerID,
				typeTags[rand.Intn(len(typeTags))],
				float64(rand.Intn(30000))/100,
				rand.Intn(2) == 1)
			if err != nil {
				log.Fatalf("Error seeding orders: %v", err)
			}
			total++
		}
	}
	log.Infof("Seeded %d orders", total)
}
