package scope

import "gorm.io/gorm"

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// OrderByTimestampAsc keeps interactions in insertion order. Ids are
// time-ordered so they break ties between equal timestamps.
func OrderByTimestampAsc(db *gorm.DB) *gorm.DB {
	return db.Order("timestamp ASC").Order("id ASC")
}
