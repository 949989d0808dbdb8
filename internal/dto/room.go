package dto

// RoomSearchParams are the validated inputs of a room schedule search.
type RoomSearchParams struct {
	Campus    string
	Semester  string
	Room      string
	HideEmpty bool // suppress fully empty grid rows
}

// RoomScheduleResponse groups matched rooms by canonical base token, in
// natural order. Rooms is empty, never nil, when nothing matched.
type RoomScheduleResponse struct {
	Rooms []RoomResult `json:"rooms"`
}

// RoomResult is one logical room: display variants sharing a base token are
// merged into a single weekly grid. DisplayName keeps the first original
// label seen in the row stream.
type RoomResult struct {
	Base        string        `json:"base"`
	DisplayName string        `json:"display_name"`
	Grid        []RoomGridRow `json:"grid"`
}
