package main

import (
	"context"
	"log"

	"share-meal-api-server/config"
	"share-meal-api-server/internal/api/routes"
	"share-meal-api-server/internal/auth"
	"share-meal-api-server/internal/database"
	"share-meal-api-server/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	client, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	st := store.New(client.Database(cfg.Mongo.DBName))
	verifier := auth.NewVerifier(cfg.JWT.Secret)

	router := routes.SetupRouter(st, verifier)

	log.Printf("Server is Running on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
