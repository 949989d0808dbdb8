package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/frostodev/sedona/internal/model"
)

// RankRow is a single top-1 ranking result.
type RankRow struct {
	Name  string `gorm:"column:name"`
	Count int64  `gorm:"column:count"`
}

// WeekdayRank is the busiest-weekday ranking result.
type WeekdayRank struct {
	Weekday int   `gorm:"column:weekday"`
	Count   int64 `gorm:"column:count"`
}

// StatsRepository computes the academic load statistics. Every query exists
// in exactly two parameterized variants, scoped and global; the branch only
// swaps structural join/where fragments, never user input.
type StatsRepository interface {
	CountSubjects(ctx context.Context, scope *Scope) (int64, error)
	CountSections(ctx context.Context, scope *Scope) (int64, error)
	// CountInstructors excludes the unassigned sentinel. Scoped: instructors
	// active in the scope. Global: every instructor on record.
	CountInstructors(ctx context.Context, scope *Scope) (int64, error)
	TopInstructorBySections(ctx context.Context, scope *Scope) (*RankRow, error)
	TopInstructorBySubjects(ctx context.Context, scope *Scope) (*RankRow, error)
	TopSubjectByInstructors(ctx context.Context, scope *Scope) (*RankRow, error)
	TopSubjectBySections(ctx context.Context, scope *Scope) (*RankRow, error)
	TopRoom(ctx context.Context, scope *Scope) (*RankRow, error)
	BusiestWeekday(ctx context.Context, scope *Scope) (*WeekdayRank, error)
}

type statsRepo struct {
	db *gorm.DB
}

// NewStatsRepo creates a StatsRepository instance.
func NewStatsRepo(db *gorm.DB) StatsRepository {
	return &statsRepo{db: db}
}

// scopeJoin reaches campus/semester from the subjects table. Structural text
// only; the scope values always travel as bind parameters.
const scopeJoin = `
JOIN semesters sem ON sub.semester_id = sem.id
JOIN campuses cam ON sem.campus_id = cam.id`

const scopeWhere = ` AND cam.name = ? AND sem.code = ?`

func scopeArgs(scope *Scope) []interface{} {
	if scope == nil {
		return nil
	}
	return []interface{}{scope.Campus, scope.Semester}
}

func (r *statsRepo) count(ctx context.Context, sql string, args []interface{}) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("%w: stats count: %v", ErrStorage, err)
	}
	return total, nil
}

// topRank runs a top-1 ranking query. A scope with no data yields nil, not an
// error.
func (r *statsRepo) topRank(ctx context.Context, sql string, args []interface{}) (*RankRow, error) {
	var rows []RankRow
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: stats ranking: %v", ErrStorage, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *statsRepo) CountSubjects(ctx context.Context, scope *Scope) (int64, error) {
	sql := `SELECT COUNT(*) FROM subjects sub`
	if scope != nil {
		sql += scopeJoin + ` WHERE 1=1` + scopeWhere
	}
	return r.count(ctx, sql, scopeArgs(scope))
}

func (r *statsRepo) CountSections(ctx context.Context, scope *Scope) (int64, error) {
	sql := `SELECT COUNT(*) FROM sections sec JOIN subjects sub ON sec.subject_id = sub.id`
	if scope != nil {
		sql += scopeJoin + ` WHERE 1=1` + scopeWhere
	}
	return r.count(ctx, sql, scopeArgs(scope))
}

func (r *statsRepo) CountInstructors(ctx context.Context, scope *Scope) (int64, error) {
	if scope == nil {
		return r.count(ctx, `SELECT COUNT(*) FROM instructors WHERE name != ?`,
			[]interface{}{model.UnassignedInstructor})
	}
	sql := `
SELECT COUNT(DISTINCT si.instructor_id)
FROM section_instructors si
JOIN sections sec ON si.section_id = sec.id
JOIN subjects sub ON sec.subject_id = sub.id
JOIN instructors ins ON si.instructor_id = ins.id` + scopeJoin + `
WHERE ins.name != ?` + scopeWhere
	args := append([]interface{}{model.UnassignedInstructor}, scopeArgs(scope)...)
	return r.count(ctx, sql, args)
}

const instructorRankBase = `
SELECT ins.name AS name, %s AS count
FROM instructors ins
JOIN section_instructors si ON ins.id = si.instructor_id
JOIN sections sec ON si.section_id = sec.id
JOIN subjects sub ON sec.subject_id = sub.id`

func (r *statsRepo) instructorRank(ctx context.Context, countExpr string, scope *Scope) (*RankRow, error) {
	sql := fmt.Sprintf(instructorRankBase, countExpr)
	if scope != nil {
		sql += scopeJoin
	}
	sql += `
WHERE ins.name != ?`
	if scope != nil {
		sql += scopeWhere
	}
	sql += `
GROUP BY ins.id, ins.name
ORDER BY count DESC
LIMIT 1`
	args := append([]interface{}{model.UnassignedInstructor}, scopeArgs(scope)...)
	return r.topRank(ctx, sql, args)
}

func (r *statsRepo) TopInstructorBySections(ctx context.Context, scope *Scope) (*RankRow, error) {
	return r.instructorRank(ctx, `COUNT(*)`, scope)
}

func (r *statsRepo) TopInstructorBySubjects(ctx context.Context, scope *Scope) (*RankRow, error) {
	return r.instructorRank(ctx, `COUNT(DISTINCT sub.id)`, scope)
}

func (r *statsRepo) TopSubjectByInstructors(ctx context.Context, scope *Scope) (*RankRow, error) {
	sql := `
SELECT sub.name AS name, COUNT(DISTINCT si.instructor_id) AS count
FROM subjects sub
JOIN sections sec ON sub.id = sec.subject_id
JOIN section_instructors si ON sec.id = si.section_id
JOIN instructors ins ON si.instructor_id = ins.id`
	if scope != nil {
		sql += scopeJoin
	}
	sql += `
WHERE ins.name != ?`
	if scope != nil {
		sql += scopeWhere
	}
	sql += `
GROUP BY sub.id, sub.name
ORDER BY count DESC
LIMIT 1`
	args := append([]interface{}{model.UnassignedInstructor}, scopeArgs(scope)...)
	return r.topRank(ctx, sql, args)
}

func (r *statsRepo) TopSubjectBySections(ctx context.Context, scope *Scope) (*RankRow, error) {
	sql := `
SELECT sub.name AS name, COUNT(sec.id) AS count
FROM subjects sub
JOIN sections sec ON sub.id = sec.subject_id`
	if scope != nil {
		sql += scopeJoin + `
WHERE 1=1` + scopeWhere
	}
	sql += `
GROUP BY sub.id, sub.name
ORDER BY count DESC
LIMIT 1`
	return r.topRank(ctx, sql, scopeArgs(scope))
}

func (r *statsRepo) TopRoom(ctx context.Context, scope *Scope) (*RankRow, error) {
	sql := `
SELECT tb.room AS name, COUNT(*) AS count
FROM time_blocks tb
JOIN sections sec ON tb.section_id = sec.id
JOIN subjects sub ON sec.subject_id = sub.id`
	if scope != nil {
		sql += scopeJoin + `
WHERE 1=1` + scopeWhere
	}
	sql += `
GROUP BY tb.room
ORDER BY count DESC
LIMIT 1`
	return r.topRank(ctx, sql, scopeArgs(scope))
}

func (r *statsRepo) BusiestWeekday(ctx context.Context, scope *Scope) (*WeekdayRank, error) {
	sql := `
SELECT tb.weekday AS weekday, COUNT(*) AS count
FROM time_blocks tb
JOIN sections sec ON tb.section_id = sec.id
JOIN subjects sub ON sec.subject_id = sub.id`
	if scope != nil {
		sql += scopeJoin + `
WHERE 1=1` + scopeWhere
	}
	sql += `
GROUP BY tb.weekday
ORDER BY count DESC
LIMIT 1`

	var rows []WeekdayRank
	if err := r.db.WithContext(ctx).Raw(sql, scopeArgs(scope)...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: busiest weekday: %v", ErrStorage, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
