package dto

// GridRow is one row of the subject-centric weekly grid: a block pair with
// its time range and seven weekday cells (Monday..Sunday). An occupied cell
// holds the room label, an empty cell the empty string.
type GridRow struct {
	Block string   `json:"block"` // "1-2" … "19-20"
	Time  string   `json:"time"`  // "8.15-9.25"; empty when no range is known
	Cells []string `json:"cells"`
}

// RoomCell is one class inside a room-centric grid cell. Cells may hold more
// than one class: double-booked lab/tutorial blocks are a known wrinkle of
// the source data.
type RoomCell struct {
	SubjectCode  string `json:"subject_code"`
	SubjectName  string `json:"subject_name"`
	SectionLabel string `json:"section_label"`
}

// RoomGridRow is one row of the room-centric weekly grid.
type RoomGridRow struct {
	Block string       `json:"block"`
	Time  string       `json:"time"`
	Cells [][]RoomCell `json:"cells"`
}
