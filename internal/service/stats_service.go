package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/repository"
)

var (
	// ErrStatsInvalidParams flags a half-specified scope: campus and semester
	// must be given together or not at all.
	ErrStatsInvalidParams = errors.New("invalid statistics parameters")
)

// StatsService computes the academic load statistics view, either scoped to
// one campus/semester or across all stored data.
type StatsService struct {
	repo   repository.StatsRepository
	logger *zap.Logger
}

func NewStatsService(repo repository.StatsRepository, logger *zap.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger}
}

// GetStats assembles all totals and top-1 rankings. Rankings with no data in
// the scope stay absent rather than reporting zero-count placeholders.
func (s *StatsService) GetStats(ctx context.Context, params dto.StatsParams) (*dto.StatsResponse, error) {
	if (params.Campus == "") != (params.Semester == "") {
		return nil, ErrStatsInvalidParams
	}

	var scope *repository.Scope
	resp := &dto.StatsResponse{}
	if params.Campus != "" {
		scope = &repository.Scope{Campus: params.Campus, Semester: params.Semester}
		resp.Scope = &dto.ScopeInfo{Campus: params.Campus, Semester: params.Semester}
	}

	var err error
	if resp.TotalSubjects, err = s.repo.CountSubjects(ctx, scope); err != nil {
		return nil, err
	}
	if resp.TotalSections, err = s.repo.CountSections(ctx, scope); err != nil {
		return nil, err
	}
	if resp.TotalInstructors, err = s.repo.CountInstructors(ctx, scope); err != nil {
		return nil, err
	}

	if resp.TopInstructorBySections, err = s.rank(ctx, scope, s.repo.TopInstructorBySections); err != nil {
		return nil, err
	}
	if resp.TopInstructorBySubjects, err = s.rank(ctx, scope, s.repo.TopInstructorBySubjects); err != nil {
		return nil, err
	}
	if resp.TopSubjectByInstructors, err = s.rank(ctx, scope, s.repo.TopSubjectByInstructors); err != nil {
		return nil, err
	}
	if resp.TopSubjectBySections, err = s.rank(ctx, scope, s.repo.TopSubjectBySections); err != nil {
		return nil, err
	}
	if resp.TopRoom, err = s.rank(ctx, scope, s.repo.TopRoom); err != nil {
		return nil, err
	}

	weekday, err := s.repo.BusiestWeekday(ctx, scope)
	if err != nil {
		return nil, err
	}
	if weekday != nil {
		resp.BusiestWeekday = &dto.WeekdayEntry{
			Weekday: weekday.Weekday,
			Name:    weekdayName(weekday.Weekday),
			Count:   weekday.Count,
		}
	}

	return resp, nil
}

func (s *StatsService) rank(ctx context.Context, scope *repository.Scope, query func(context.Context, *repository.Scope) (*repository.RankRow, error)) (*dto.RankEntry, error) {
	row, err := query(ctx, scope)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return &dto.RankEntry{Name: row.Name, Count: row.Count}, nil
}

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func weekdayName(d int) string {
	if d < 1 || d > len(weekdayNames) {
		return ""
	}
	return weekdayNames[d-1]
}
