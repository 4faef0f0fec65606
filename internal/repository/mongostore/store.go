package mongostore

import (
	"context"

	"live-rooms-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/mongo"
)

// scoped binds a collection to an optional client session so that writes
// issued through a unit of work join its transaction.
type scoped struct {
	collection *mongo.Collection
	session    mongo.Session
}

func (s scoped) ctx(ctx context.Context) context.Context {
	if s.session == nil {
		return ctx
	}
	return mongo.NewSessionContext(ctx, s.session)
}

func translateError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return contract.ErrDuplicate
	}
	return err
}
