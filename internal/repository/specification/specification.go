package specification

import (
	"go.mongodb.org/mongo-driver/bson"
	"gorm.io/gorm"
)

// Specification is a query predicate understood by every store backend.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
	Filter(filter bson.M)
	IsSatisfiedBy(record any) bool
}

// BuildFilter folds specs into a single Mongo filter document.
func BuildFilter(specs ...Specification) bson.M {
	filter := bson.M{}
	for _, spec := range specs {
		spec.Filter(filter)
	}
	return filter
}

func SatisfiesAll(record any, specs ...Specification) bool {
	for _, spec := range specs {
		if !spec.IsSatisfiedBy(record) {
			return false
		}
	}
	return true
}
