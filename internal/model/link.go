package model

// Link is a directed, named edge between two objects.
// The parent_type and child_type labels are denormalized from the endpoint
// objects' types; the object rows remain the source of truth.
//
// Only direct self-loops are rejected at creation. Longer cycles are legal
// data, consumers walking the graph must carry their own cycle guard.
type Link struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ParentID   int64  `gorm:"column:parent_id;not null;index:idx_link_parent_id;uniqueIndex:uq_link_edge" json:"parent_id"`
	ParentType string `gorm:"column:parent_type;not null" json:"parent_type"`
	ChildType  string `gorm:"column:child_type;not null" json:"child_type"`
	RName      string `gorm:"column:r_name;not null;uniqueIndex:uq_link_edge" json:"r_name"`
	ChildID    int64  `gorm:"column:child_id;not null;index:idx_link_child_id;uniqueIndex:uq_link_edge" json:"child_id"`
}

func (l *Link) TableName() string {
	return "link"
}
