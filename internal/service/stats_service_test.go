package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/repository"
)

func setupStatsService() (*StatsService, *mockStatsRepo) {
	repo := newMockStatsRepo()
	return NewStatsService(repo, zap.NewNop()), repo
}

func TestGetStatsHalfScopeRejected(t *testing.T) {
	svc, _ := setupStatsService()

	cases := []dto.StatsParams{
		{Campus: "San Joaquin"},
		{Semester: "2026-1"},
	}
	for _, params := range cases {
		if _, err := svc.GetStats(context.Background(), params); !errors.Is(err, ErrStatsInvalidParams) {
			t.Errorf("params %+v: err = %v, want ErrStatsInvalidParams", params, err)
		}
	}
}

func TestGetStatsScoped(t *testing.T) {
	svc, repo := setupStatsService()
	repo.subjects = 120
	repo.sections = 340
	repo.instructors = 85
	repo.rankings["instructor_sections"] = &repository.RankRow{Name: "PEREZ LOPEZ", Count: 9}
	repo.rankings["room"] = &repository.RankRow{Name: "B008", Count: 44}
	repo.weekday = &repository.WeekdayRank{Weekday: 2, Count: 310}

	resp, err := svc.GetStats(context.Background(), dto.StatsParams{Campus: "San Joaquin", Semester: "2026-1"})
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if !repo.scoped {
		t.Error("repository should have been queried with a scope")
	}
	if resp.Scope == nil || resp.Scope.Campus != "San Joaquin" {
		t.Errorf("scope = %+v, want San Joaquin echoed back", resp.Scope)
	}
	if resp.TotalSubjects != 120 || resp.TotalSections != 340 || resp.TotalInstructors != 85 {
		t.Errorf("totals = %d/%d/%d, want 120/340/85",
			resp.TotalSubjects, resp.TotalSections, resp.TotalInstructors)
	}
	if resp.TopInstructorBySections == nil || resp.TopInstructorBySections.Name != "PEREZ LOPEZ" {
		t.Errorf("top instructor = %+v, want PEREZ LOPEZ", resp.TopInstructorBySections)
	}
	if resp.TopRoom == nil || resp.TopRoom.Count != 44 {
		t.Errorf("top room = %+v, want count 44", resp.TopRoom)
	}
	if resp.BusiestWeekday == nil || resp.BusiestWeekday.Name != "Tuesday" {
		t.Errorf("busiest weekday = %+v, want Tuesday", resp.BusiestWeekday)
	}
}

func TestGetStatsGlobal(t *testing.T) {
	svc, repo := setupStatsService()
	repo.subjects = 9000

	resp, err := svc.GetStats(context.Background(), dto.StatsParams{})
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if repo.scoped {
		t.Error("repository should have been queried without a scope")
	}
	if resp.Scope != nil {
		t.Errorf("scope = %+v, want nil for global stats", resp.Scope)
	}
	if resp.TotalSubjects != 9000 {
		t.Errorf("total subjects = %d, want 9000", resp.TotalSubjects)
	}
}

func TestGetStatsEmptyRankingsAbsent(t *testing.T) {
	svc, _ := setupStatsService()

	resp, err := svc.GetStats(context.Background(), dto.StatsParams{Campus: "X", Semester: "Y"})
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if resp.TopInstructorBySections != nil || resp.TopSubjectBySections != nil ||
		resp.TopRoom != nil || resp.BusiestWeekday != nil {
		t.Error("rankings should stay absent when the scope has no data")
	}
}

func TestGetStatsStorageError(t *testing.T) {
	svc, repo := setupStatsService()
	repo.err = errBoom

	if _, err := svc.GetStats(context.Background(), dto.StatsParams{}); !errors.Is(err, repository.ErrStorage) {
		t.Errorf("err = %v, want ErrStorage", err)
	}
}
