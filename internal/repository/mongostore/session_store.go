package mongostore

import (
	"context"
	"errors"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/specification"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionStore struct {
	scoped
}

func NewSessionStore(db *mongo.Database, session mongo.Session) contract.SessionRepository {
	return &SessionStore{scoped{collection: db.Collection(sessionsCollection), session: session}}
}

func (s *SessionStore) Create(ctx context.Context, session *entity.Session) error {
	_, err := s.collection.InsertOne(s.ctx(ctx), newSessionDocument(session))
	return translateError(err)
}

func (s *SessionStore) Update(ctx context.Context, session *entity.Session) error {
	doc := newSessionDocument(session)
	_, err := s.collection.ReplaceOne(s.ctx(ctx), bson.M{"_id": doc.ID}, doc)
	return translateError(err)
}

func (s *SessionStore) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	var doc sessionDocument
	err := s.collection.FindOne(s.ctx(ctx), specification.BuildFilter(specs...)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}
