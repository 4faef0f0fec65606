package specification

import (
	"live-rooms-be/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"gorm.io/gorm"
)

// ByEmail expects an already normalised (lower-cased) address.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

func (s ByEmail) Filter(filter bson.M) {
	filter["email"] = s.Email
}

func (s ByEmail) IsSatisfiedBy(record any) bool {
	u, ok := record.(*entity.User)
	return ok && u.Email == s.Email
}
