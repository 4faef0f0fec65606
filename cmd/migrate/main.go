package main

import (
	"context"
	"log"
	"time"

	"live-rooms-be/internal/config"
	"live-rooms-be/internal/model"
	"live-rooms-be/internal/repository/mongostore"
	"live-rooms-be/pkg/database"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		migratePostgres(cfg)
	case config.DriverMongo:
		migrateMongo(ctx, cfg)
	default:
		log.Fatalf("Error: nothing to migrate for DB_DRIVER=%q", cfg.Database.Driver)
	}
}

func migratePostgres(cfg *config.Config) {
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.Debug)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Room{},
		&model.Session{},
		&model.Interaction{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}

func migrateMongo(ctx context.Context, cfg *config.Config) {
	client, db, err := database.NewMongoDB(ctx, cfg.Database.MongoURI, cfg.Database.MongoDatabase)
	if err != nil {
		log.Fatal("Error: Failed to connect to MongoDB:", err)
	}
	defer database.DisconnectMongo(client)

	log.Printf("Ensuring indexes on %q...", db.Name())
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Error: index creation failed: %v", err)
	}

	log.Println("✅ Success: MongoDB indexes are in place.")
}
