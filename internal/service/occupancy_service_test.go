package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/repository"
)

func setupOccupancyService() (*OccupancyService, *mockScheduleRepo) {
	repo := newMockScheduleRepo()
	return NewOccupancyService(repo, zap.NewNop()), repo
}

func occupancyParams(weekday int, blocks ...int) dto.EmptyRoomSearchParams {
	return dto.EmptyRoomSearchParams{
		Campus:   "San Joaquin",
		Semester: "2026-1",
		Weekday:  weekday,
		Blocks:   blocks,
	}
}

func TestFindEmptyRoomsValidation(t *testing.T) {
	svc, _ := setupOccupancyService()

	cases := []dto.EmptyRoomSearchParams{
		{Semester: "2026-1", Weekday: 1, Blocks: []int{0}},
		{Campus: "San Joaquin", Weekday: 1, Blocks: []int{0}},
		occupancyParams(0, 0),    // weekday below range
		occupancyParams(8, 0),    // weekday above range
		occupancyParams(1),       // no blocks
		occupancyParams(1, -1),   // block below range
		occupancyParams(1, 10),   // block above user-facing range
		occupancyParams(1, 0, 10),
	}
	for _, params := range cases {
		if _, err := svc.FindEmptyRooms(context.Background(), params); !errors.Is(err, ErrOccupancyInvalidParams) {
			t.Errorf("params %+v: err = %v, want ErrOccupancyInvalidParams", params, err)
		}
	}
}

func TestFindEmptyRoomsOccupancyFlags(t *testing.T) {
	svc, repo := setupOccupancyService()

	repo.rooms = []string{"B10", "B2", "M301"}
	// Stored blocks are 1-based: B2 busy in the first pair, M301 in the
	// fourth.
	repo.occupancy = map[string][]int{
		"B2":   {1},
		"M301": {4, 5},
	}

	resp, err := svc.FindEmptyRooms(context.Background(), occupancyParams(2, 0, 3))
	if err != nil {
		t.Fatalf("FindEmptyRooms: %v", err)
	}

	if resp.Weekday != 2 {
		t.Errorf("weekday = %d, want 2", resp.Weekday)
	}
	wantBlocks := []dto.BlockColumn{{Index: 0, Range: "1-2"}, {Index: 3, Range: "7-8"}}
	if !reflect.DeepEqual(resp.Blocks, wantBlocks) {
		t.Errorf("blocks = %v, want %v", resp.Blocks, wantBlocks)
	}

	// Natural room order: B2 before B10.
	want := []dto.RoomOccupancy{
		{Room: "B2", Occupied: []bool{true, false}},
		{Room: "B10", Occupied: []bool{false, false}},
		{Room: "M301", Occupied: []bool{false, true}},
	}
	if !reflect.DeepEqual(resp.Rooms, want) {
		t.Errorf("rooms = %v, want %v", resp.Rooms, want)
	}
}

func TestFindEmptyRoomsEmptyScope(t *testing.T) {
	svc, _ := setupOccupancyService()

	resp, err := svc.FindEmptyRooms(context.Background(), occupancyParams(1, 0))
	if err != nil {
		t.Fatalf("FindEmptyRooms: %v", err)
	}
	if len(resp.Rooms) != 0 {
		t.Errorf("rooms = %d, want 0", len(resp.Rooms))
	}
	if resp.Rooms == nil {
		t.Error("rooms should be an empty slice, not nil")
	}
}

func TestFindEmptyRoomsStorageError(t *testing.T) {
	svc, repo := setupOccupancyService()
	repo.err = errBoom

	if _, err := svc.FindEmptyRooms(context.Background(), occupancyParams(1, 0)); !errors.Is(err, repository.ErrStorage) {
		t.Errorf("err = %v, want ErrStorage", err)
	}
}
