package unitofwork

import (
	"context"

	"live-rooms-be/internal/repository/memory"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db: db,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewUnitOfWork(f.db)
}

type MongoRepositoryFactory struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
}

// NewMongoRepositoryFactory builds units of work over db. Transactions need a
// replica set; with transactions off Begin/Commit/Rollback are no-ops.
func NewMongoRepositoryFactory(client *mongo.Client, db *mongo.Database, transactions bool) RepositoryFactory {
	return &MongoRepositoryFactory{
		client:       client,
		db:           db,
		transactions: transactions,
	}
}

func (f *MongoRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewMongoUnitOfWork(f.client, f.db, f.transactions)
}

type MemoryRepositoryFactory struct {
	store *memory.Store
}

func NewMemoryRepositoryFactory(store *memory.Store) RepositoryFactory {
	return &MemoryRepositoryFactory{store: store}
}

func (f *MemoryRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewMemoryUnitOfWork(f.store)
}
