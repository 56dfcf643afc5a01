package model

// Attribute is a key-value extension record for an object.
// At most one attribute of a given name may exist per object.
type Attribute struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"not null;uniqueIndex:uq_attributes_object_name" json:"name"`
	Value     string `gorm:"not null" json:"value"`
	ObjectID  int64  `gorm:"column:object_id;not null;uniqueIndex:uq_attributes_object_name" json:"object_id"`
	CreatedOn string `gorm:"not null" json:"created_on"`
	UpdatedOn string `gorm:"not null" json:"updated_on"`
}

func (a *Attribute) TableName() string {
	return "attributes"
}
