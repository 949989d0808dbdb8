package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/repository"
)

var (
	// ErrRoomInvalidParams covers missing or malformed room search input.
	ErrRoomInvalidParams = errors.New("invalid room search parameters")
)

// RoomService answers room-centric schedule queries: find rooms by substring,
// fold display variants of the same physical room into one weekly grid.
type RoomService struct {
	repo   repository.ScheduleRepository
	logger *zap.Logger
}

func NewRoomService(repo repository.ScheduleRepository, logger *zap.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger}
}

// SearchRooms looks up every room whose label contains the query and returns
// one merged grid per canonical base. Labels like "B008 LAB-MEC" and
// "B008 - SJ" collapse into the "B008" group; the first label seen names the
// group. Grids carry all ten block rows so free slots stay visible, unless
// the caller asks for empty rows to be suppressed.
func (s *RoomService) SearchRooms(ctx context.Context, params dto.RoomSearchParams) (*dto.RoomScheduleResponse, error) {
	if params.Campus == "" || params.Semester == "" || params.Room == "" {
		return nil, ErrRoomInvalidParams
	}

	scope := repository.Scope{Campus: params.Campus, Semester: params.Semester}
	rows, err := s.repo.FindRoomUsage(ctx, scope, params.Room)
	if err != nil {
		return nil, err
	}

	type roomAccum struct {
		display    string
		placements []roomPlacement
	}

	groups := make(map[string]*roomAccum)
	var bases []string
	for _, r := range rows {
		base := CanonicalRoom(r.Room)
		g, ok := groups[base]
		if !ok {
			g = &roomAccum{display: r.Room}
			groups[base] = g
			bases = append(bases, base)
		}
		g.placements = append(g.placements, roomPlacement{
			Weekday: r.Weekday,
			Block:   r.Block,
			Cell: dto.RoomCell{
				SubjectCode:  r.SubjectCode,
				SubjectName:  r.SubjectName,
				SectionLabel: r.SectionLabel,
			},
		})
	}

	sort.Slice(bases, func(i, j int) bool { return naturalLess(bases[i], bases[j]) })

	resp := &dto.RoomScheduleResponse{Rooms: make([]dto.RoomResult, 0, len(bases))}
	for _, base := range bases {
		g := groups[base]
		resp.Rooms = append(resp.Rooms, dto.RoomResult{
			Base:        base,
			DisplayName: g.display,
			Grid:        buildRoomGrid(g.placements, params.HideEmpty),
		})
	}

	s.logger.Debug("room search",
		zap.String("query", params.Room),
		zap.Int("rows", len(rows)),
		zap.Int("rooms", len(resp.Rooms)))
	return resp, nil
}
