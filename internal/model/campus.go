package model

// Campus is a physical university location, the top-level scoping key.
// The name, not the numeric id, is the external join key.
type Campus struct {
	ID   int    `gorm:"primaryKey"                 json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

// TableName sets the table name.
func (Campus) TableName() string { return "campuses" }
