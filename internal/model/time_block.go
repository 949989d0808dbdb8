package model

// Weekday and block bounds for a time block. Blocks are stored 1-based as
// single block-pair numbers; the display grid maps block b to row b-1.
const (
	MinWeekday = 1
	MaxWeekday = 7
	MinBlock   = 1
	MaxBlock   = 10
)

// TimeBlock is one weekday+block+room assignment of a section. Contradictory
// duplicate rows exist in the source data and are deduplicated downstream,
// never rejected.
type TimeBlock struct {
	ID        int    `gorm:"primaryKey"                 json:"id"`
	SectionID int    `gorm:"not null"                   json:"section_id"`
	Weekday   int    `gorm:"not null"                   json:"weekday"`
	Block     int    `gorm:"not null"                   json:"block"`
	Room      string `gorm:"type:varchar(100);not null" json:"room"`
}

// TableName sets the table name.
func (TimeBlock) TableName() string { return "time_blocks" }
