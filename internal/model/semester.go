package model

// Semester is an academic term scoped under a campus. The code (term label)
// is the external join key, unique per campus.
type Semester struct {
	ID       int     `gorm:"primaryKey"                json:"id"`
	Code     string  `gorm:"type:varchar(20);not null" json:"code"`
	CampusID int     `gorm:"not null"                  json:"campus_id"`
	Campus   *Campus `gorm:"foreignKey:CampusID"       json:"campus,omitempty"`
}

// TableName sets the table name.
func (Semester) TableName() string { return "semesters" }
