package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/andrisetia/reservation-app/config"
	"github.com/andrisetia/reservation-app/models"
	"github.com/andrisetia/reservation-app/router"
	"github.com/andrisetia/reservation-app/store"
	"github.com/andrisetia/reservation-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Table{}, &models.Reservation{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	if err := store.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed default floor: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		utils.InfoLogger.Println("Redis not reachable, floor view cache disabled")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db, rdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
