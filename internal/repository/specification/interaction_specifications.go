package specification

import (
	"live-rooms-be/internal/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"gorm.io/gorm"
)

type BySession struct {
	SessionID uuid.UUID
}

func (s BySession) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

func (s BySession) Filter(filter bson.M) {
	filter["session_id"] = s.SessionID.String()
}

func (s BySession) IsSatisfiedBy(record any) bool {
	i, ok := record.(*entity.Interaction)
	return ok && i.SessionId == s.SessionID
}
