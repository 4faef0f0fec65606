package mongostore

import (
	"context"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/specification"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InteractionStore struct {
	scoped
}

func NewInteractionStore(db *mongo.Database, session mongo.Session) contract.InteractionRepository {
	return &InteractionStore{scoped{collection: db.Collection(interactionsCollection), session: session}}
}

func (s *InteractionStore) Create(ctx context.Context, interaction *entity.Interaction) error {
	_, err := s.collection.InsertOne(s.ctx(ctx), newInteractionDocument(interaction))
	return translateError(err)
}

func (s *InteractionStore) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := s.collection.Find(s.ctx(ctx), specification.BuildFilter(specs...), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	interactions := []*entity.Interaction{}
	for cur.Next(ctx) {
		var doc interactionDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		interaction, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		interactions = append(interactions, interaction)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return interactions, nil
}
