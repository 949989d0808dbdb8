package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/frostodev/sedona/internal/dto"
)

// ExportService renders room schedules into downloadable xlsx workbooks, one
// sheet per matched room.
type ExportService struct {
	rooms  *RoomService
	logger *zap.Logger
}

func NewExportService(rooms *RoomService, logger *zap.Logger) *ExportService {
	return &ExportService{rooms: rooms, logger: logger}
}

var exportHeader = []string{"Block", "Time", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ExportRoomSchedules runs a room search and writes the matched grids to an
// xlsx workbook. Validation errors from the underlying search pass through
// unchanged.
func (s *ExportService) ExportRoomSchedules(ctx context.Context, params dto.RoomSearchParams) ([]byte, error) {
	result, err := s.rooms.SearchRooms(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool, len(result.Rooms))
	for i, room := range result.Rooms {
		sheet := sheetName(room.Base, i, used)
		if i == 0 {
			f.SetSheetName(f.GetSheetName(0), sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("create sheet: %w", err)
			}
		}

		if err := f.SetSheetRow(sheet, "A1", &[]interface{}{room.DisplayName}); err != nil {
			return nil, fmt.Errorf("write sheet title: %w", err)
		}
		header := make([]interface{}, len(exportHeader))
		for j, h := range exportHeader {
			header[j] = h
		}
		if err := f.SetSheetRow(sheet, "A2", &header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}

		for r, row := range room.Grid {
			values := make([]interface{}, 0, len(exportHeader))
			values = append(values, row.Block, row.Time)
			for _, cell := range row.Cells {
				values = append(values, cellText(cell))
			}
			axis := fmt.Sprintf("A%d", r+3)
			if err := f.SetSheetRow(sheet, axis, &values); err != nil {
				return nil, fmt.Errorf("write grid row: %w", err)
			}
		}
	}

	if len(result.Rooms) == 0 {
		// Keep the default sheet but make the empty result explicit.
		if err := f.SetSheetRow(f.GetSheetName(0), "A1", &[]interface{}{"No rooms matched the query"}); err != nil {
			return nil, fmt.Errorf("write empty marker: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}

	s.logger.Info("room schedule export",
		zap.String("query", params.Room),
		zap.Int("rooms", len(result.Rooms)),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// cellText flattens a multi-class cell into one line per class.
func cellText(classes []dto.RoomCell) string {
	if len(classes) == 0 {
		return ""
	}
	lines := make([]string, 0, len(classes))
	for _, c := range classes {
		lines = append(lines, fmt.Sprintf("%s-%s %s", c.SubjectCode, c.SectionLabel, c.SubjectName))
	}
	return strings.Join(lines, "\n")
}

// sheetName keeps sheet titles within the 31-char xlsx limit, free of
// forbidden characters, and unique within the workbook. Distinct bases can
// map to the same title after character replacement or truncation, so
// collisions get a numeric suffix.
func sheetName(base string, idx int, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, base)
	if name == "" {
		name = fmt.Sprintf("Room %d", idx+1)
	}
	if len(name) > 31 {
		name = name[:31]
	}
	// Sheet names are case-insensitive in xlsx.
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		trimmed := name
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		candidate = trimmed + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}
