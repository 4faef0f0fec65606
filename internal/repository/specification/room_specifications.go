package specification

import (
	"live-rooms-be/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"gorm.io/gorm"
)

type ActiveRooms struct{}

func (s ActiveRooms) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func (s ActiveRooms) Filter(filter bson.M) {
	filter["is_active"] = true
}

func (s ActiveRooms) IsSatisfiedBy(record any) bool {
	r, ok := record.(*entity.Room)
	return ok && r.IsActive
}

type ByPrivacy struct {
	Privacy entity.RoomPrivacy
}

func (s ByPrivacy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("privacy = ?", string(s.Privacy))
}

func (s ByPrivacy) Filter(filter bson.M) {
	filter["privacy"] = string(s.Privacy)
}

func (s ByPrivacy) IsSatisfiedBy(record any) bool {
	r, ok := record.(*entity.Room)
	return ok && r.Privacy == s.Privacy
}
