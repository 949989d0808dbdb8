package model

// Section is one scheduled offering of a subject ("paralelo"). The label is
// unique within a subject.
type Section struct {
	ID          int          `gorm:"primaryKey"                               json:"id"`
	SubjectID   int          `gorm:"not null"                                 json:"subject_id"`
	Label       string       `gorm:"type:varchar(10);not null"                json:"label"`
	Capacity    int          `gorm:"not null;default:0"                       json:"capacity"`
	Subject     *Subject     `gorm:"foreignKey:SubjectID"                     json:"subject,omitempty"`
	Instructors []Instructor `gorm:"many2many:section_instructors"            json:"instructors,omitempty"`
	TimeBlocks  []TimeBlock  `gorm:"foreignKey:SectionID"                     json:"time_blocks,omitempty"`
}

// TableName sets the table name.
func (Section) TableName() string { return "sections" }
