package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/model"
	"github.com/frostodev/sedona/internal/repository"
)

var (
	// ErrSearchInvalidParams covers missing or malformed search input.
	ErrSearchInvalidParams = errors.New("invalid search parameters")
)

// SearchService answers subject/section queries against a campus+semester
// scope and reshapes the flat rows into per-section weekly grids.
type SearchService struct {
	repo   repository.ScheduleRepository
	logger *zap.Logger
}

func NewSearchService(repo repository.ScheduleRepository, logger *zap.Logger) *SearchService {
	return &SearchService{repo: repo, logger: logger}
}

// SearchSubjects runs one query in the given scope. The query text decides
// the mode: an exact section locator ("MAT024-203") selects one subject's
// sections by prefix, anything else becomes an ordered fuzzy match over
// subject code, subject name and instructor name.
func (s *SearchService) SearchSubjects(ctx context.Context, params dto.SubjectSearchParams) (*dto.SubjectSearchResponse, error) {
	if params.Campus == "" || params.Semester == "" || params.Query == "" {
		return nil, ErrSearchInvalidParams
	}

	parsed := ClassifyQuery(params.Query)
	scope := repository.Scope{Campus: params.Campus, Semester: params.Semester}

	filter := repository.SectionFilter{}
	info := dto.QueryInfo{}
	if parsed.Exact != nil {
		filter.SubjectCode = parsed.Exact.SubjectCode
		filter.SectionPrefix = parsed.Exact.SectionPrefix
		info.Kind = "exact"
		info.SubjectCode = parsed.Exact.SubjectCode
		info.SectionPrefix = parsed.Exact.SectionPrefix
	} else {
		filter.Pattern = parsed.Pattern
		info.Kind = "fuzzy"
		info.Tokens = parsed.Tokens
	}

	rows, err := s.repo.FindSections(ctx, scope, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.SubjectSearchResponse{
		Query:    info,
		Subjects: s.aggregate(rows, params.HideEmpty),
	}
	s.logger.Debug("subject search",
		zap.String("kind", info.Kind),
		zap.Int("rows", len(rows)),
		zap.Int("subjects", len(resp.Subjects)))
	return resp, nil
}

// sectionAccum collects one section's rows before grid assembly.
type sectionAccum struct {
	label       string
	capacity    int
	instructors []string
	seenInstr   map[string]bool
	meetings    []meeting
}

// aggregate groups flat rows into subject → section → grid. Row order from
// storage (subject code, section label, weekday, block) fixes output order,
// so plain slices keyed by first appearance preserve it.
func (s *SearchService) aggregate(rows []repository.SectionRow, hideEmpty bool) []dto.SubjectResult {
	type subjectAccum struct {
		code, name, department string
		sectionOrder           []string
		sections               map[string]*sectionAccum
	}

	var order []string
	subjects := make(map[string]*subjectAccum)

	for _, r := range rows {
		sub, ok := subjects[r.SubjectCode]
		if !ok {
			sub = &subjectAccum{
				code:       r.SubjectCode,
				name:       r.SubjectName,
				department: r.Department,
				sections:   make(map[string]*sectionAccum),
			}
			subjects[r.SubjectCode] = sub
			order = append(order, r.SubjectCode)
		}

		sec, ok := sub.sections[r.SectionLabel]
		if !ok {
			sec = &sectionAccum{
				label:     r.SectionLabel,
				capacity:  r.Capacity,
				seenInstr: make(map[string]bool),
			}
			sub.sections[r.SectionLabel] = sec
			sub.sectionOrder = append(sub.sectionOrder, r.SectionLabel)
		}

		if r.Instructor != nil {
			name := *r.Instructor
			if name != "" && name != model.UnassignedInstructor && !sec.seenInstr[name] {
				sec.seenInstr[name] = true
				sec.instructors = append(sec.instructors, name)
			}
		}
		if r.Weekday != nil && r.Block != nil {
			room := ""
			if r.Room != nil {
				room = *r.Room
			}
			sec.meetings = append(sec.meetings, meeting{
				Weekday: *r.Weekday,
				Block:   *r.Block,
				Room:    room,
			})
		}
	}

	out := make([]dto.SubjectResult, 0, len(order))
	for _, code := range order {
		sub := subjects[code]
		res := dto.SubjectResult{
			Code:       sub.code,
			Name:       sub.name,
			Department: sub.department,
			Sections:   make([]dto.SectionResult, 0, len(sub.sectionOrder)),
		}
		for _, label := range sub.sectionOrder {
			sec := sub.sections[label]
			instructors := sec.instructors
			if instructors == nil {
				instructors = []string{}
			}
			sort.Strings(instructors)
			res.Sections = append(res.Sections, dto.SectionResult{
				Label:       sec.label,
				Capacity:    sec.capacity,
				Instructors: instructors,
				Grid:        buildTextGrid(sec.meetings, hideEmpty),
			})
		}
		out = append(out, res)
	}
	return out
}
