package model

// Object is the central addressable node in the hierarchy graph.
// Objects are connected through link rows, not through columns on this table.
type Object struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Version   int64  `gorm:"not null;default:1" json:"version"`
	TypeID    string `gorm:"column:type_id;type:uuid;not null" json:"type_id"`
	CreatedOn string `gorm:"not null" json:"created_on"`
	CreatedBy string `gorm:"not null" json:"created_by"`
}

func (o *Object) TableName() string {
	return "object"
}
