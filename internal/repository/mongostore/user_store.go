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

type UserStore struct {
	scoped
}

func NewUserStore(db *mongo.Database, session mongo.Session) contract.UserRepository {
	return &UserStore{scoped{collection: db.Collection(usersCollection), session: session}}
}

func (s *UserStore) Create(ctx context.Context, user *entity.User) error {
	_, err := s.collection.InsertOne(s.ctx(ctx), newUserDocument(user))
	return translateError(err)
}

func (s *UserStore) Update(ctx context.Context, user *entity.User) error {
	doc := newUserDocument(user)
	_, err := s.collection.ReplaceOne(s.ctx(ctx), bson.M{"_id": doc.ID}, doc)
	return translateError(err)
}

func (s *UserStore) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var doc userDocument
	err := s.collection.FindOne(s.ctx(ctx), specification.BuildFilter(specs...)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (s *UserStore) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	cur, err := s.collection.Find(s.ctx(ctx), specification.BuildFilter(specs...))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(docs))
	for i, d := range docs {
		users[i] = d.toEntity()
	}
	return users, nil
}
