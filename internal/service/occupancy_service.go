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
	// ErrOccupancyInvalidParams covers out-of-range weekday or block input.
	ErrOccupancyInvalidParams = errors.New("invalid occupancy parameters")
)

// OccupancyService builds the room × block occupancy grid used to find free
// rooms at a given time.
type OccupancyService struct {
	repo   repository.ScheduleRepository
	logger *zap.Logger
}

func NewOccupancyService(repo repository.ScheduleRepository, logger *zap.Logger) *OccupancyService {
	return &OccupancyService{repo: repo, logger: logger}
}

// FindEmptyRooms reports, for every room of the scope, whether each requested
// block on the weekday is occupied. Block indices are the user-facing 0-9 and
// map to the stored 1-10 numbering. Occupancy for the whole weekday is loaded
// in one bulk query; per-room membership checks never touch storage again.
func (s *OccupancyService) FindEmptyRooms(ctx context.Context, params dto.EmptyRoomSearchParams) (*dto.EmptyRoomsResponse, error) {
	if params.Campus == "" || params.Semester == "" {
		return nil, ErrOccupancyInvalidParams
	}
	if params.Weekday < model.MinWeekday || params.Weekday > model.MaxWeekday {
		return nil, ErrOccupancyInvalidParams
	}
	if len(params.Blocks) == 0 {
		return nil, ErrOccupancyInvalidParams
	}
	for _, b := range params.Blocks {
		if b < 0 || b >= model.MaxBlock {
			return nil, ErrOccupancyInvalidParams
		}
	}

	scope := repository.Scope{Campus: params.Campus, Semester: params.Semester}

	rooms, err := s.repo.ListRooms(ctx, scope)
	if err != nil {
		return nil, err
	}
	occupied, err := s.repo.OccupancyMap(ctx, scope, params.Weekday)
	if err != nil {
		return nil, err
	}

	// Index the bulk result once for O(1) membership checks.
	byRoom := make(map[string]map[int]bool, len(occupied))
	for room, blocks := range occupied {
		set := make(map[int]bool, len(blocks))
		for _, b := range blocks {
			set[b] = true
		}
		byRoom[room] = set
	}

	sort.Slice(rooms, func(i, j int) bool { return naturalLess(rooms[i], rooms[j]) })

	columns := make([]dto.BlockColumn, 0, len(params.Blocks))
	for _, idx := range params.Blocks {
		columns = append(columns, dto.BlockColumn{
			Index: idx,
			Range: blockRangeLabel(idx),
		})
	}

	resp := &dto.EmptyRoomsResponse{
		Weekday: params.Weekday,
		Blocks:  columns,
		Rooms:   make([]dto.RoomOccupancy, 0, len(rooms)),
	}
	for _, room := range rooms {
		flags := make([]bool, len(params.Blocks))
		for i, idx := range params.Blocks {
			flags[i] = byRoom[room][idx+1]
		}
		resp.Rooms = append(resp.Rooms, dto.RoomOccupancy{Room: room, Occupied: flags})
	}

	s.logger.Debug("empty room search",
		zap.Int("weekday", params.Weekday),
		zap.Int("rooms", len(rooms)))
	return resp, nil
}
