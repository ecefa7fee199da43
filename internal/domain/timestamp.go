package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	WallClockLayout = "2006-01-02T15:04:05"
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04"
)

var localLayouts = []string{
	WallClockLayout,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Timestamp is an instant rendered as local wall-clock time without offset.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.In(time.Local)}
}

func ParseTimestamp(value string) (Timestamp, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return NewTimestamp(t), nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return Timestamp{Time: t}, nil
		}
	}

	return Timestamp{}, fmt.Errorf("marca de tiempo no válida: %q", value)
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(WallClockLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*t = Timestamp{}
		return nil
	}

	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	local := t.In(time.Local)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

func SameDay(a, b time.Time) bool {
	la, lb := a.In(time.Local), b.In(time.Local)
	return la.Year() == lb.Year() && la.YearDay() == lb.YearDay()
}

func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}
