package schedule

import (
	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

const (
	// GridOffset is the number of cells taken by the column header.
	GridOffset = 2
	CellCount  = SlotCount
	CellHeight = 48
)

// Cell is one row of a doctor column.
type Cell struct {
	Index    int            `json:"index"`
	Slot     int            `json:"slot"`
	Time     string         `json:"time,omitempty"`
	Entry    *CalendarEntry `json:"entry,omitempty"`
	Head     bool           `json:"head,omitempty"`
	HeightPx int            `json:"heightPx,omitempty"`
}

func (c Cell) Occupied() bool {
	return c.Entry != nil
}

func emptyCells() []Cell {
	cells := make([]Cell, CellCount)
	for i := range cells {
		slot := i - GridOffset
		cells[i] = Cell{Index: i, Slot: slot}
		if slot >= 0 {
			cells[i].Time = SlotLabel(slot)
		}
	}
	return cells
}

// PlaceEntries writes every entry into the cells its span covers. Entries are
// applied in order, so a later entry overwrites an earlier one on the cells
// they share. Spans running past the last cell are clipped.
func PlaceEntries(entries []CalendarEntry) []Cell {
	cells := emptyCells()

	for i := range entries {
		entry := entries[i]
		first := entry.StartSlot + GridOffset
		last := entry.EndSlot + GridOffset

		for idx := first; idx <= last; idx++ {
			if idx < 0 || idx >= CellCount {
				continue
			}

			cell := &cells[idx]
			cell.Entry = &entry
			cell.Head = idx == first
			cell.HeightPx = 0
			if cell.Head {
				cell.HeightPx = (last - first + 1) * CellHeight
			}
		}
	}

	return cells
}

// PlaceAppointments lays out one doctor's appointments for a day.
func PlaceAppointments(appointments []domain.Appointment) []Cell {
	entries := make([]CalendarEntry, 0, len(appointments))
	for _, a := range appointments {
		entries = append(entries, NewCalendarEntry(a))
	}
	return PlaceEntries(entries)
}
