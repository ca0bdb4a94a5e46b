package main

import (
	"log"

	"github.com/joho/godotenv"

	"madhurfashion.in/storefront/internal/router"
	"madhurfashion.in/storefront/pkg/ai"
	"madhurfashion.in/storefront/pkg/global"
	"madhurfashion.in/storefront/pkg/mongo"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()
	ai.InitializeAIService()

	router.InitEngine()
	router.InitDependencies()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
