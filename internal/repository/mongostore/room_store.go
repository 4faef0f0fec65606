package mongostore

import (
	"context"
	"errors"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/specification"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RoomStore struct {
	scoped
}

func NewRoomStore(db *mongo.Database, session mongo.Session) contract.RoomRepository {
	return &RoomStore{scoped{collection: db.Collection(roomsCollection), session: session}}
}

func (s *RoomStore) Create(ctx context.Context, room *entity.Room) error {
	_, err := s.collection.InsertOne(s.ctx(ctx), newRoomDocument(room))
	return translateError(err)
}

// Update replaces the whole document, so concurrent membership changes on
// the same room are last-write-wins.
func (s *RoomStore) Update(ctx context.Context, room *entity.Room) error {
	doc := newRoomDocument(room)
	_, err := s.collection.ReplaceOne(s.ctx(ctx), bson.M{"_id": doc.ID}, doc)
	return translateError(err)
}

func (s *RoomStore) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error) {
	var doc roomDocument
	err := s.collection.FindOne(s.ctx(ctx), specification.BuildFilter(specs...)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (s *RoomStore) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Room, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := s.collection.Find(s.ctx(ctx), specification.BuildFilter(specs...), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []roomDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	rooms := make([]*entity.Room, len(docs))
	for i, d := range docs {
		rooms[i] = d.toEntity()
	}
	return rooms, nil
}
