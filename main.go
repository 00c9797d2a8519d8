package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.etcd.io/bbolt"

	"github.com/rajeev06code/thekua/cartstore"
	"github.com/rajeev06code/thekua/catalog"
	checkoutControllers "github.com/rajeev06code/thekua/controllers/checkout"
	"github.com/rajeev06code/thekua/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Open the embedded cart database
	db := initCartDB()
	defer db.Close()

	// Load the static product catalog
	products, err := catalog.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}

	// Cart persistence + per-session stores
	persister, err := cartstore.NewBoltPersister(db)
	if err != nil {
		log.Fatalf("❌ Failed to init cart persistence: %v", err)
	}
	carts := cartstore.NewManager(persister)

	// Order confirmation hand-off channel
	vault, err := checkoutControllers.NewOrderVault(db)
	if err != nil {
		log.Fatalf("❌ Failed to init order vault: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, carts, products, vault)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initCartDB opens the bbolt file backing cart and confirmation storage
func initCartDB() *bbolt.DB {
	path := os.Getenv("CART_DB_PATH")
	if path == "" {
		path = "thekua.db"
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		log.Fatalf("❌ Failed to open cart DB: %v", err)
	}
	return db
}
