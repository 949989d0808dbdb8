package service

import (
	"fmt"
	"strings"

	"github.com/frostodev/sedona/internal/dto"
)

// ── weekly grid builder ─────────────────────────────────────
//
// Projects time blocks onto the fixed 10×7 weekly grid: rows are the block
// pairs 1-2 … 19-20, columns Monday..Sunday. A stored block b lands in row
// b-1, weekday d in column d-1.
// ─────────────────────────────────────────────────────────────

const (
	gridRows = 10
	gridCols = 7
)

// blockTimes maps each block-pair row label to its time range. Rows missing
// here still render, with empty time text.
var blockTimes = map[string]string{
	"1-2":   "8.15-9.25",
	"3-4":   "9.40-10.50",
	"5-6":   "11.05-12.15",
	"7-8":   "12.30-13.40",
	"9-10":  "14.40-15.50",
	"11-12": "16.05-17.15",
	"13-14": "17.30-18.40",
	"15-16": "18.55-20.05",
	"17-18": "20.20-21.30",
	"19-20": "21.45-22.55",
}

// blockRangeLabel renders a row index 0-9 as its block-pair label, "1-2"
// through "19-20".
func blockRangeLabel(row int) string {
	return fmt.Sprintf("%d-%d", row*2+1, row*2+2)
}

// meeting is one placed (weekday, block, room) triple of a section.
type meeting struct {
	Weekday int
	Block   int
	Room    string
}

// buildTextGrid fills the subject-centric grid: each occupied cell holds the
// room label. Out-of-range coordinates are skipped rather than crashing on
// dirty rows. With hideEmpty, rows whose seven cells are all empty are
// dropped entirely; kept rows always carry all seven columns.
func buildTextGrid(meetings []meeting, hideEmpty bool) []dto.GridRow {
	var cells [gridRows][gridCols]string
	for _, m := range meetings {
		row, col := m.Block-1, m.Weekday-1
		if row < 0 || row >= gridRows || col < 0 || col >= gridCols {
			continue
		}
		cells[row][col] = m.Room
	}

	rows := make([]dto.GridRow, 0, gridRows)
	for i := 0; i < gridRows; i++ {
		empty := true
		for _, c := range cells[i] {
			if c != "" {
				empty = false
				break
			}
		}
		if hideEmpty && empty {
			continue
		}
		label := blockRangeLabel(i)
		rows = append(rows, dto.GridRow{
			Block: label,
			Time:  blockTimes[label],
			Cells: append([]string(nil), cells[i][:]...),
		})
	}
	return rows
}

// roomPlacement is one class placed in a room grid cell.
type roomPlacement struct {
	Weekday int
	Block   int
	Cell    dto.RoomCell
}

// buildRoomGrid fills the room-centric grid. A cell may hold several classes
// (double-booked lab blocks exist in the source data); exact repeats of the
// same subject+section are suppressed per cell.
func buildRoomGrid(placements []roomPlacement, hideEmpty bool) []dto.RoomGridRow {
	var cells [gridRows][gridCols][]dto.RoomCell
	var seen [gridRows][gridCols]map[string]bool

	for _, p := range placements {
		row, col := p.Block-1, p.Weekday-1
		if row < 0 || row >= gridRows || col < 0 || col >= gridCols {
			continue
		}
		key := p.Cell.SubjectCode + "-" + p.Cell.SectionLabel
		if seen[row][col] == nil {
			seen[row][col] = make(map[string]bool)
		}
		if seen[row][col][key] {
			continue
		}
		seen[row][col][key] = true
		cells[row][col] = append(cells[row][col], p.Cell)
	}

	rows := make([]dto.RoomGridRow, 0, gridRows)
	for i := 0; i < gridRows; i++ {
		empty := true
		for _, c := range cells[i] {
			if len(c) > 0 {
				empty = false
				break
			}
		}
		if hideEmpty && empty {
			continue
		}
		label := blockRangeLabel(i)
		out := make([][]dto.RoomCell, gridCols)
		for c := 0; c < gridCols; c++ {
			if cells[i][c] == nil {
				out[c] = []dto.RoomCell{}
			} else {
				out[c] = cells[i][c]
			}
		}
		rows = append(rows, dto.RoomGridRow{
			Block: label,
			Time:  blockTimes[label],
			Cells: out,
		})
	}
	return rows
}

// naturalLess compares two strings case-insensitively with numeric runs
// compared by value, so "B2" sorts before "B10".
func naturalLess(a, b string) bool {
	ai, bi := 0, 0
	la, lb := strings.ToLower(a), strings.ToLower(b)
	for ai < len(la) && bi < len(lb) {
		ca, cb := la[ai], lb[bi]
		if isDigit(ca) && isDigit(cb) {
			// compare the full digit runs numerically
			aj, bj := ai, bi
			for aj < len(la) && isDigit(la[aj]) {
				aj++
			}
			for bj < len(lb) && isDigit(lb[bj]) {
				bj++
			}
			na := strings.TrimLeft(la[ai:aj], "0")
			nb := strings.TrimLeft(lb[bi:bj], "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			ai, bi = aj, bj
			continue
		}
		if ca != cb {
			return ca < cb
		}
		ai++
		bi++
	}
	return len(la)-ai < len(lb)-bi
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
