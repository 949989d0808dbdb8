package dto

// EmptyRoomSearchParams are the validated inputs of an empty-room search.
// Blocks are the user-facing indices 0-9; the service converts them to the
// stored 1-10 numbering.
type EmptyRoomSearchParams struct {
	Campus   string
	Semester string
	Weekday  int
	Blocks   []int
}

// BlockColumn describes one requested block column of the occupancy grid.
type BlockColumn struct {
	Index int    `json:"index"` // user-facing 0-9
	Range string `json:"range"` // "1-2" … "19-20"
}

// RoomOccupancy is one room's occupancy across the requested blocks, aligned
// with the Blocks column order.
type RoomOccupancy struct {
	Room     string `json:"room"`
	Occupied []bool `json:"occupied"`
}

// EmptyRoomsResponse is the room × block occupancy grid, rooms in natural
// order.
type EmptyRoomsResponse struct {
	Weekday int             `json:"weekday"`
	Blocks  []BlockColumn   `json:"blocks"`
	Rooms   []RoomOccupancy `json:"rooms"`
}
