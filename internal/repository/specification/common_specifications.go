package specification

import (
	"live-rooms-be/internal/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

func (s ByID) Filter(filter bson.M) {
	filter["_id"] = s.ID.String()
}

func (s ByID) IsSatisfiedBy(record any) bool {
	id, ok := recordID(record)
	return ok && id == s.ID
}

// ByIDs filters by a list of IDs
type ByIDs struct {
	IDs []uuid.UUID
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

func (s ByIDs) Filter(filter bson.M) {
	ids := make([]string, len(s.IDs))
	for i, id := range s.IDs {
		ids[i] = id.String()
	}
	filter["_id"] = bson.M{"$in": ids}
}

func (s ByIDs) IsSatisfiedBy(record any) bool {
	id, ok := recordID(record)
	if !ok {
		return false
	}
	for _, candidate := range s.IDs {
		if candidate == id {
			return true
		}
	}
	return false
}

func recordID(record any) (uuid.UUID, bool) {
	switch r := record.(type) {
	case *entity.User:
		return r.Id, true
	case *entity.Room:
		return r.Id, true
	case *entity.Session:
		return r.Id, true
	case *entity.Interaction:
		return r.Id, true
	default:
		return uuid.Nil, false
	}
}
