package dto

// StatsParams select the statistics scope. Both fields set → scoped to one
// campus/semester; both empty → global, historic totals.
type StatsParams struct {
	Campus   string
	Semester string
}

// ScopeInfo echoes the applied scope back to the caller.
type ScopeInfo struct {
	Campus   string `json:"campus"`
	Semester string `json:"semester"`
}

// RankEntry is a top-1 ranking line. Absent when the scope has no data.
type RankEntry struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// WeekdayEntry is the busiest-weekday ranking line.
type WeekdayEntry struct {
	Weekday int    `json:"weekday"`
	Name    string `json:"name"`
	Count   int64  `json:"count"`
}

// StatsResponse carries the totals and rankings of the statistics view.
type StatsResponse struct {
	Scope                   *ScopeInfo    `json:"scope,omitempty"`
	TotalSubjects           int64         `json:"total_subjects"`
	TotalSections           int64         `json:"total_sections"`
	TotalInstructors        int64         `json:"total_instructors"`
	TopInstructorBySections *RankEntry    `json:"top_instructor_by_sections,omitempty"`
	TopInstructorBySubjects *RankEntry    `json:"top_instructor_by_subjects,omitempty"`
	TopSubjectByInstructors *RankEntry    `json:"top_subject_by_instructors,omitempty"`
	TopSubjectBySections    *RankEntry    `json:"top_subject_by_sections,omitempty"`
	TopRoom                 *RankEntry    `json:"top_room,omitempty"`
	BusiestWeekday          *WeekdayEntry `json:"busiest_weekday,omitempty"`
}
