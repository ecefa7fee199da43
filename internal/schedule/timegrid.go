// Package schedule turns appointment records into the per-doctor time grid
// of the clinic agenda.
package schedule

import (
	"fmt"
	"time"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

const (
	FirstHour    = 8
	LastHour     = 20
	SlotsPerHour = 2
	SlotMinutes  = 30
	// SlotCount covers 08:00 through the 20:00-20:30 slot.
	SlotCount = (LastHour-FirstHour)*SlotsPerHour + 1
)

// TimeToSlot maps a wall-clock time to its slot index. Times outside the
// scheduling day produce indexes outside 0..SlotCount-1.
func TimeToSlot(hour, minute int) int {
	slot := (hour - FirstHour) * SlotsPerHour
	if minute == SlotMinutes {
		slot++
	}
	return slot
}

func SlotToTime(slot int) (hour, minute int) {
	return FirstHour + slot/SlotsPerHour, (slot % SlotsPerHour) * SlotMinutes
}

func ValidSlot(slot int) bool {
	return slot >= 0 && slot < SlotCount
}

// SlotLabel renders the slot start as HH:MM.
func SlotLabel(slot int) string {
	hour, minute := SlotToTime(slot)
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// SlotStart returns the instant a slot starts on the given date.
func SlotStart(date time.Time, slot int) time.Time {
	hour, minute := SlotToTime(slot)
	day := domain.StartOfDay(date)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
}

// SlotSpan returns the first and the last slot an appointment occupies. The
// end slot is the last one included, and a missing end means one slot.
func SlotSpan(start time.Time, end *time.Time) (startSlot, endSlot int) {
	s := start.In(time.Local)
	startSlot = TimeToSlot(s.Hour(), s.Minute())

	if end == nil || end.IsZero() {
		return startSlot, startSlot
	}

	e := end.In(time.Local)
	endSlot = TimeToSlot(e.Hour(), e.Minute()) - 1
	if endSlot < startSlot {
		endSlot = startSlot
	}

	return startSlot, endSlot
}

// AppointmentSpan is SlotSpan for a stored appointment.
func AppointmentSpan(a domain.Appointment) (startSlot, endSlot int) {
	if a.End == nil || a.End.IsZero() {
		return SlotSpan(a.Start.Time, nil)
	}
	end := a.End.Time
	return SlotSpan(a.Start.Time, &end)
}
