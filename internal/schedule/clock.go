package schedule

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. Used for demo agendas and tests.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
