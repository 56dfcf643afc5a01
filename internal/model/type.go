package model

// Type is a category for objects. Many objects may reference one type.
// The id is immutable, the name is not.
type Type struct {
	ID   string `gorm:"primaryKey;type:uuid;not null" json:"id"`
	Name string `gorm:"column:type_name;not null" json:"name"`
}

func (t *Type) TableName() string {
	return "type"
}
