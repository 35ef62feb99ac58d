package main

import (
	"ExerciseTracker/config/database"
	"ExerciseTracker/config/environment"
	"ExerciseTracker/middleware"
	route "ExerciseTracker/routes"
	"ExerciseTracker/services"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// firestore init, one client for the whole process
	database.InitFirebase()

	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.RegisterRoutes(r, services.NewUserService())

	port := environment.GetPort()
	if port == "" {
		port = "8080"
	}
	log.Println("Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
