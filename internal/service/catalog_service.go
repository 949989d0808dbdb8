package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/repository"
	"github.com/frostodev/sedona/pkg/redis"
)

var (
	// ErrCatalogInvalidParams covers missing selector input.
	ErrCatalogInvalidParams = errors.New("invalid catalog parameters")
)

// CatalogService serves the cascading selector lookups. Results change only
// on data import, so they are cached in Redis when a client is configured;
// with a nil cache every call goes straight to storage.
type CatalogService struct {
	repo   repository.CatalogRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCatalogService(repo repository.CatalogRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// cached serves dest from the cache when possible, otherwise runs load (which
// must fill dest) and stores the result.
func (s *CatalogService) cached(ctx context.Context, key string, dest interface{}, load func() error) error {
	if s.cache != nil && s.cache.GetJSON(ctx, key, dest) {
		return nil
	}
	if err := load(); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.SetJSON(ctx, key, dest, s.ttl)
	}
	return nil
}

// ListCampuses returns every campus, sorted by name.
func (s *CatalogService) ListCampuses(ctx context.Context) (*dto.CampusesResponse, error) {
	resp := &dto.CampusesResponse{}
	err := s.cached(ctx, "campuses", resp, func() error {
		campuses, err := s.repo.ListCampuses(ctx)
		if err != nil {
			return err
		}
		resp.Campuses = make([]dto.CampusRef, 0, len(campuses))
		for _, c := range campuses {
			resp.Campuses = append(resp.Campuses, dto.CampusRef{ID: c.ID, Name: c.Name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListSemesters returns the semester codes of one campus, newest first.
func (s *CatalogService) ListSemesters(ctx context.Context, campus string) (*dto.SemestersResponse, error) {
	if campus == "" {
		return nil, ErrCatalogInvalidParams
	}
	resp := &dto.SemestersResponse{}
	err := s.cached(ctx, "semesters:"+campus, resp, func() error {
		codes, err := s.repo.ListSemesters(ctx, campus)
		if err != nil {
			return err
		}
		if codes == nil {
			codes = []string{}
		}
		resp.Campus = campus
		resp.Semesters = codes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListSubjects returns the subjects of one campus/semester scope.
func (s *CatalogService) ListSubjects(ctx context.Context, campus, semester string) (*dto.SubjectsResponse, error) {
	if campus == "" || semester == "" {
		return nil, ErrCatalogInvalidParams
	}
	resp := &dto.SubjectsResponse{}
	key := fmt.Sprintf("subjects:%s:%s", campus, semester)
	err := s.cached(ctx, key, resp, func() error {
		refs, err := s.repo.ListSubjects(ctx, repository.Scope{Campus: campus, Semester: semester})
		if err != nil {
			return err
		}
		resp.Subjects = make([]dto.SubjectRef, 0, len(refs))
		for _, r := range refs {
			resp.Subjects = append(resp.Subjects, dto.SubjectRef{ID: r.ID, Code: r.Code, Name: r.Name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListSections returns the sections of one subject.
func (s *CatalogService) ListSections(ctx context.Context, subjectID int) (*dto.SectionsResponse, error) {
	if subjectID <= 0 {
		return nil, ErrCatalogInvalidParams
	}
	resp := &dto.SectionsResponse{}
	key := fmt.Sprintf("sections:%d", subjectID)
	err := s.cached(ctx, key, resp, func() error {
		refs, err := s.repo.ListSections(ctx, subjectID)
		if err != nil {
			return err
		}
		resp.Sections = make([]dto.SectionRef, 0, len(refs))
		for _, r := range refs {
			resp.Sections = append(resp.Sections, dto.SectionRef{ID: r.ID, Label: r.Label})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
