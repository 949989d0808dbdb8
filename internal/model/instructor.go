package model

// UnassignedInstructor is the sentinel name the source data uses for sections
// without an assigned instructor. It is excluded from every instructor-facing
// aggregate and ranking.
const UnassignedInstructor = "NN"

// Instructor teaches zero or more sections.
type Instructor struct {
	ID   int    `gorm:"primaryKey"                 json:"id"`
	Name string `gorm:"type:varchar(200);not null" json:"name"`
}

// TableName sets the table name.
func (Instructor) TableName() string { return "instructors" }
