package model

// Subject is a course offered within a semester. Codes are alphanumeric and
// matched case-insensitively.
type Subject struct {
	ID         int       `gorm:"primaryKey"                 json:"id"`
	Code       string    `gorm:"type:varchar(20);not null"  json:"code"`
	Name       string    `gorm:"type:varchar(200);not null" json:"name"`
	Department string    `gorm:"type:varchar(200)"          json:"department"`
	SemesterID int       `gorm:"not null"                   json:"semester_id"`
	Semester   *Semester `gorm:"foreignKey:SemesterID"      json:"semester,omitempty"`
}

// TableName sets the table name.
func (Subject) TableName() string { return "subjects" }
