package model

import "time"

// Versioning is a historical version tag for an object. An object may carry
// any number of tags; there is no ordering beyond created_at.
type Versioning struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ObjectID  int64     `gorm:"column:object_id;not null;index:idx_versioning_object_id" json:"object_id"`
	Version   string    `gorm:"not null" json:"version"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (v *Versioning) TableName() string {
	return "versioning"
}
