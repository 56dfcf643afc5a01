package model

// Permission is an access control record for an object.
// Records are stored here but not evaluated; enforcement belongs to the
// consumer of the store.
type Permission struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ObjectID        int64  `gorm:"column:object_id;not null;index:idx_permissions_object_id" json:"object_id"`
	User            string `gorm:"not null" json:"user"`
	PermissionLevel string `gorm:"column:permission_level;not null" json:"permission_level"`
}

func (p *Permission) TableName() string {
	return "permissions"
}
