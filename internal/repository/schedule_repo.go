package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SectionRow is one flat row of the section search join: one row per
// (section, instructor, time-block) combination. Sections without instructors
// or time blocks still appear once, with the optional fields nil.
type SectionRow struct {
	SubjectCode  string  `gorm:"column:subject_code"`
	SubjectName  string  `gorm:"column:subject_name"`
	Department   string  `gorm:"column:department"`
	SectionLabel string  `gorm:"column:section_label"`
	Capacity     int     `gorm:"column:capacity"`
	Instructor   *string `gorm:"column:instructor"`
	Weekday      *int    `gorm:"column:weekday"`
	Block        *int    `gorm:"column:block"`
	Room         *string `gorm:"column:room"`
}

// RoomUsageRow is one flat row of the room usage join.
type RoomUsageRow struct {
	Room         string `gorm:"column:room"`
	SubjectCode  string `gorm:"column:subject_code"`
	SubjectName  string `gorm:"column:subject_name"`
	SectionLabel string `gorm:"column:section_label"`
	Weekday      int    `gorm:"column:weekday"`
	Block        int    `gorm:"column:block"`
}

// OccupancyRow is one (room, block) occupation for a single weekday.
type OccupancyRow struct {
	Room  string `gorm:"column:room"`
	Block int    `gorm:"column:block"`
}

// SectionFilter selects one of the two section search variants. A non-empty
// SubjectCode means an exact locator (normalized code + section label prefix);
// otherwise Pattern carries the fuzzy wildcard-joined token pattern.
type SectionFilter struct {
	SubjectCode   string
	SectionPrefix string
	Pattern       string
}

// ScheduleRepository runs the read queries of the search engine. Every query
// is parameterized; user input never reaches the SQL text.
type ScheduleRepository interface {
	// FindSections joins subjects, sections, instructors and time blocks for
	// the scope, filtered by an exact locator or a fuzzy pattern.
	FindSections(ctx context.Context, scope Scope, filter SectionFilter) ([]SectionRow, error)
	// FindRoomUsage returns every class placed in rooms matching the
	// case-insensitive substring, ordered by (room, weekday, block).
	FindRoomUsage(ctx context.Context, scope Scope, room string) ([]RoomUsageRow, error)
	// ListRooms returns the distinct room labels with at least one time block
	// in the scope.
	ListRooms(ctx context.Context, scope Scope) ([]string, error)
	// OccupancyMap bulk-loads every occupied (room, block) pair of one weekday
	// in a single query, grouped by room. One query regardless of room count.
	OccupancyMap(ctx context.Context, scope Scope, weekday int) (map[string][]int, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo creates a ScheduleRepository instance.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

const sectionSearchBase = `
SELECT sub.code AS subject_code,
       sub.name AS subject_name,
       COALESCE(sub.department, '') AS department,
       sec.label AS section_label,
       sec.capacity,
       ins.name AS instructor,
       tb.weekday,
       tb.block,
       tb.room
FROM subjects sub
JOIN sections sec ON sec.subject_id = sub.id
LEFT JOIN section_instructors si ON si.section_id = sec.id
LEFT JOIN instructors ins ON ins.id = si.instructor_id
LEFT JOIN time_blocks tb ON tb.section_id = sec.id
JOIN semesters sem ON sub.semester_id = sem.id
JOIN campuses cam ON sem.campus_id = cam.id
WHERE cam.name = ? AND sem.code = ?`

func (r *scheduleRepo) FindSections(ctx context.Context, scope Scope, filter SectionFilter) ([]SectionRow, error) {
	var (
		sql  string
		args []interface{}
	)

	if filter.SubjectCode != "" {
		// Exact section locator. The stored code is normalized the same way
		// as the input so punctuation and case variants still match.
		sql = sectionSearchBase + `
AND lower(regexp_replace(sub.code, '[^a-zA-Z0-9]+', '', 'g')) = ?
AND sec.label LIKE ?
ORDER BY sub.code, sec.label, tb.weekday, tb.block`
		args = []interface{}{scope.Campus, scope.Semester, filter.SubjectCode, filter.SectionPrefix + "%"}
	} else {
		sql = sectionSearchBase + `
AND (sub.code ILIKE ? OR sub.name ILIKE ? OR ins.name ILIKE ?)
ORDER BY sub.code, sec.label, tb.weekday, tb.block`
		args = []interface{}{scope.Campus, scope.Semester, filter.Pattern, filter.Pattern, filter.Pattern}
	}

	var rows []SectionRow
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: find sections: %v", ErrStorage, err)
	}
	return rows, nil
}

func (r *scheduleRepo) FindRoomUsage(ctx context.Context, scope Scope, room string) ([]RoomUsageRow, error) {
	const sql = `
SELECT tb.room,
       sub.code AS subject_code,
       sub.name AS subject_name,
       sec.label AS section_label,
       tb.weekday,
       tb.block
FROM subjects sub
JOIN sections sec ON sec.subject_id = sub.id
JOIN time_blocks tb ON tb.section_id = sec.id
JOIN semesters sem ON sub.semester_id = sem.id
JOIN campuses cam ON sem.campus_id = cam.id
WHERE cam.name = ? AND sem.code = ?
AND tb.room ILIKE ?
ORDER BY tb.room, tb.weekday, tb.block`

	var rows []RoomUsageRow
	err := r.db.WithContext(ctx).
		Raw(sql, scope.Campus, scope.Semester, "%"+room+"%").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: find room usage: %v", ErrStorage, err)
	}
	return rows, nil
}

func (r *scheduleRepo) ListRooms(ctx context.Context, scope Scope) ([]string, error) {
	const sql = `
SELECT DISTINCT tb.room
FROM time_blocks tb
JOIN sections sec ON tb.section_id = sec.id
JOIN subjects sub ON sec.subject_id = sub.id
JOIN semesters sem ON sub.semester_id = sem.id
JOIN campuses cam ON sem.campus_id = cam.id
WHERE cam.name = ? AND sem.code = ?
ORDER BY tb.room ASC`

	var rooms []string
	err := r.db.WithContext(ctx).
		Raw(sql, scope.Campus, scope.Semester).
		Scan(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list rooms: %v", ErrStorage, err)
	}
	return rooms, nil
}

func (r *scheduleRepo) OccupancyMap(ctx context.Context, scope Scope, weekday int) (map[string][]int, error) {
	const sql = `
SELECT tb.room, tb.block
FROM time_blocks tb
JOIN sections sec ON tb.section_id = sec.id
JOIN subjects sub ON sec.subject_id = sub.id
JOIN semesters sem ON sub.semester_id = sem.id
JOIN campuses cam ON sem.campus_id = cam.id
WHERE cam.name = ? AND sem.code = ? AND tb.weekday = ?`

	var rows []OccupancyRow
	err := r.db.WithContext(ctx).
		Raw(sql, scope.Campus, scope.Semester, weekday).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: occupancy map: %v", ErrStorage, err)
	}

	occupied := make(map[string][]int)
	for _, row := range rows {
		occupied[row.Room] = append(occupied[row.Room], row.Block)
	}
	return occupied, nil
}
