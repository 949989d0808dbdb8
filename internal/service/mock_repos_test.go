package service

import (
	"context"
	"fmt"

	"github.com/frostodev/sedona/internal/model"
	"github.com/frostodev/sedona/internal/repository"
)

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	sections  []repository.SectionRow
	roomUsage []repository.RoomUsageRow
	rooms     []string
	occupancy map[string][]int

	lastFilter repository.SectionFilter
	lastScope  repository.Scope
	err        error
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{occupancy: make(map[string][]int)}
}

func (m *mockScheduleRepo) FindSections(_ context.Context, scope repository.Scope, filter repository.SectionFilter) ([]repository.SectionRow, error) {
	m.lastScope = scope
	m.lastFilter = filter
	return m.sections, m.err
}

func (m *mockScheduleRepo) FindRoomUsage(_ context.Context, scope repository.Scope, _ string) ([]repository.RoomUsageRow, error) {
	m.lastScope = scope
	return m.roomUsage, m.err
}

func (m *mockScheduleRepo) ListRooms(_ context.Context, scope repository.Scope) ([]string, error) {
	m.lastScope = scope
	return m.rooms, m.err
}

func (m *mockScheduleRepo) OccupancyMap(_ context.Context, scope repository.Scope, _ int) (map[string][]int, error) {
	m.lastScope = scope
	if m.err != nil {
		return nil, m.err
	}
	return m.occupancy, nil
}

// ── Mock CatalogRepository ──

type mockCatalogRepo struct {
	campuses  []model.Campus
	semesters map[string][]string
	subjects  map[string][]repository.SubjectRef
	sections  map[int][]repository.SectionRef

	calls int
	err   error
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		semesters: make(map[string][]string),
		subjects:  make(map[string][]repository.SubjectRef),
		sections:  make(map[int][]repository.SectionRef),
	}
}

func (m *mockCatalogRepo) ListCampuses(_ context.Context) ([]model.Campus, error) {
	m.calls++
	return m.campuses, m.err
}

func (m *mockCatalogRepo) ListSemesters(_ context.Context, campus string) ([]string, error) {
	m.calls++
	return m.semesters[campus], m.err
}

func (m *mockCatalogRepo) ListSubjects(_ context.Context, scope repository.Scope) ([]repository.SubjectRef, error) {
	m.calls++
	return m.subjects[scope.Campus+":"+scope.Semester], m.err
}

func (m *mockCatalogRepo) ListSections(_ context.Context, subjectID int) ([]repository.SectionRef, error) {
	m.calls++
	return m.sections[subjectID], m.err
}

// ── Mock StatsRepository ──

type mockStatsRepo struct {
	subjects    int64
	sections    int64
	instructors int64
	rankings    map[string]*repository.RankRow
	weekday     *repository.WeekdayRank

	scoped bool
	err    error
}

func newMockStatsRepo() *mockStatsRepo {
	return &mockStatsRepo{rankings: make(map[string]*repository.RankRow)}
}

func (m *mockStatsRepo) note(scope *repository.Scope) {
	m.scoped = scope != nil
}

func (m *mockStatsRepo) CountSubjects(_ context.Context, scope *repository.Scope) (int64, error) {
	m.note(scope)
	return m.subjects, m.err
}

func (m *mockStatsRepo) CountSections(_ context.Context, scope *repository.Scope) (int64, error) {
	m.note(scope)
	return m.sections, m.err
}

func (m *mockStatsRepo) CountInstructors(_ context.Context, scope *repository.Scope) (int64, error) {
	m.note(scope)
	return m.instructors, m.err
}

func (m *mockStatsRepo) TopInstructorBySections(_ context.Context, scope *repository.Scope) (*repository.RankRow, error) {
	m.note(scope)
	return m.rankings["instructor_sections"], m.err
}

func (m *mockStatsRepo) TopInstructorBySubjects(_ context.Context, scope *repository.Scope) (*repository.RankRow, error) {
	m.note(scope)
	return m.rankings["instructor_subjects"], m.err
}

func (m *mockStatsRepo) TopSubjectByInstructors(_ context.Context, scope *repository.Scope) (*repository.RankRow, error) {
	m.note(scope)
	return m.rankings["subject_instructors"], m.err
}

func (m *mockStatsRepo) TopSubjectBySections(_ context.Context, scope *repository.Scope) (*repository.RankRow, error) {
	m.note(scope)
	return m.rankings["subject_sections"], m.err
}

func (m *mockStatsRepo) TopRoom(_ context.Context, scope *repository.Scope) (*repository.RankRow, error) {
	m.note(scope)
	return m.rankings["room"], m.err
}

func (m *mockStatsRepo) BusiestWeekday(_ context.Context, scope *repository.Scope) (*repository.WeekdayRank, error) {
	m.note(scope)
	return m.weekday, m.err
}

// ── seed helpers ──

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

// sectionRow builds one fully placed row of the section search join.
func sectionRow(code, name, label, instructor string, weekday, block int, room string) repository.SectionRow {
	return repository.SectionRow{
		SubjectCode:  code,
		SubjectName:  name,
		Department:   "Informatics",
		SectionLabel: label,
		Capacity:     40,
		Instructor:   strptr(instructor),
		Weekday:      intptr(weekday),
		Block:        intptr(block),
		Room:         strptr(room),
	}
}

var errBoom = fmt.Errorf("%w: simulated failure", repository.ErrStorage)
