package unitofwork

import (
	"context"
	"fmt"

	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/mongostore"

	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUnitOfWork struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool

	ctx     context.Context
	session mongo.Session
}

func NewMongoUnitOfWork(client *mongo.Client, db *mongo.Database, transactions bool) UnitOfWork {
	return &MongoUnitOfWork{
		client:       client,
		db:           db,
		transactions: transactions,
	}
}

func (u *MongoUnitOfWork) Begin(ctx context.Context) error {
	if !u.transactions {
		return nil
	}
	if u.session != nil {
		return fmt.Errorf("transaction already started")
	}

	session, err := u.client.StartSession()
	if err != nil {
		return err
	}
	if err := session.StartTransaction(); err != nil {
		session.EndSession(ctx)
		return err
	}

	u.ctx = ctx
	u.session = session
	return nil
}

func (u *MongoUnitOfWork) Commit() error {
	if !u.transactions {
		return nil
	}
	if u.session == nil {
		return fmt.Errorf("no transaction to commit")
	}
	defer u.end()
	return u.session.CommitTransaction(u.ctx)
}

func (u *MongoUnitOfWork) Rollback() error {
	if !u.transactions {
		return nil
	}
	if u.session == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	defer u.end()
	return u.session.AbortTransaction(u.ctx)
}

func (u *MongoUnitOfWork) end() {
	u.session.EndSession(u.ctx)
	u.session = nil
	u.ctx = nil
}

// Repository Accessors

func (u *MongoUnitOfWork) UserRepository() contract.UserRepository {
	return mongostore.NewUserStore(u.db, u.session)
}

func (u *MongoUnitOfWork) RoomRepository() contract.RoomRepository {
	return mongostore.NewRoomStore(u.db, u.session)
}

func (u *MongoUnitOfWork) SessionRepository() contract.SessionRepository {
	return mongostore.NewSessionStore(u.db, u.session)
}

func (u *MongoUnitOfWork) InteractionRepository() contract.InteractionRepository {
	return mongostore.NewInteractionStore(u.db, u.session)
}
