package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/zakariabn/orbit-tools-server-site/routes"
	"github.com/zakariabn/orbit-tools-server-site/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init document store
	s := initStore()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(corsConfig()))

	// Setup routes
	routes.SetupRoutes(r, s)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore connects to MongoDB using env credentials.
func initStore() store.Store {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "orbitTools"
	}

	s, err := store.ConnectMongo(uri, dbName)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return s
}

// corsConfig allows the configured origins with credentials so the auth
// cookie survives cross-origin requests. Without ALLOWED_ORIGINS the API is
// open to any origin, credentials disabled.
func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	} else {
		cfg.AllowOrigins = []string{"*"}
	}
	return cfg
}
