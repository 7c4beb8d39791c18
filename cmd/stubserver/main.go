package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/abelgk/crately/internal/infrastructure/config"
	"github.com/abelgk/crately/internal/infrastructure/logger"
	"github.com/abelgk/crately/internal/infrastructure/uuidgen"
	"github.com/abelgk/crately/internal/stubserver"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	jwtSecret := os.Getenv("STUB_JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "crately-dev-secret"
		log.Println("STUB_JWT_SECRET not set, using the dev default")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()
	uuidGenerator := uuidgen.NewGenerator()

	store := stubserver.NewAlbumStore(uuidGenerator)
	stubserver.Seed(store)

	router := gin.Default()
	appRouter := stubserver.NewRouter(store, uuidGenerator, appLogger, jwtSecret, appConfig.GetCSRFCookieName(), appConfig.GetPageSize())
	appRouter.SetupRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Stub authority running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
