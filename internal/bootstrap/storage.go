package bootstrap

import (
	"context"
	"fmt"
	"log"

	"live-rooms-be/internal/config"
	"live-rooms-be/internal/repository/memory"
	"live-rooms-be/internal/repository/unitofwork"
	"live-rooms-be/pkg/database"
)

// Storage is the repository backend chosen by DB_DRIVER.
type Storage struct {
	Factory unitofwork.RepositoryFactory
	Close   func() error
}

func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		client, db, err := database.NewMongoDB(ctx, cfg.Database.MongoURI, cfg.Database.MongoDatabase)
		if err != nil {
			return nil, err
		}
		log.Printf("[INFO] Using MongoDB database %q (transactions: %t)", db.Name(), cfg.Database.MongoTransactions)
		return &Storage{
			Factory: unitofwork.NewMongoRepositoryFactory(client, db, cfg.Database.MongoTransactions),
			Close:   func() error { return database.DisconnectMongo(client) },
		}, nil

	case config.DriverPostgres:
		gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.Debug)
		if err != nil {
			return nil, err
		}
		log.Println("[INFO] Using PostgreSQL via GORM")
		return &Storage{
			Factory: unitofwork.NewRepositoryFactory(gormDB),
			Close: func() error {
				sqlDB, err := gormDB.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil

	case config.DriverMemory:
		log.Println("[WARN] Using in-memory storage, data is lost on restart")
		return &Storage{
			Factory: unitofwork.NewMemoryRepositoryFactory(memory.NewStore()),
			Close:   func() error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
}
