package schedule

import (
	"time"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

// Navigator moves the anchor date of a view. It holds no state of its own
// besides the clock used by Today.
type Navigator struct {
	clock Clock
}

func NewNavigator(clock Clock) *Navigator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Navigator{clock: clock}
}

func (n *Navigator) Initial(viewType domain.ViewType) domain.NavigationState {
	if viewType == "" {
		viewType = domain.ViewTypeDay
	}
	return domain.NavigationState{AnchorDate: n.today(), ViewType: viewType}
}

func (n *Navigator) Previous(state domain.NavigationState) domain.NavigationState {
	state.AnchorDate = state.AnchorDate.AddDate(0, 0, -step(state.ViewType))
	return state
}

func (n *Navigator) Next(state domain.NavigationState) domain.NavigationState {
	state.AnchorDate = state.AnchorDate.AddDate(0, 0, step(state.ViewType))
	return state
}

func (n *Navigator) Today(state domain.NavigationState) domain.NavigationState {
	state.AnchorDate = n.today()
	return state
}

func (n *Navigator) SetViewType(state domain.NavigationState, viewType domain.ViewType) domain.NavigationState {
	state.ViewType = viewType
	return state
}

func (n *Navigator) today() time.Time {
	return domain.StartOfDay(n.clock.Now())
}

func step(viewType domain.ViewType) int {
	if viewType == domain.ViewTypeWeek {
		return 7
	}
	return 1
}

// WeekStart returns the Monday of the week containing date.
func WeekStart(date time.Time) time.Time {
	day := domain.StartOfDay(date)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// VisibleDays lists the dates a view shows: the anchor for a day view, or
// Monday through Sunday for a week view.
func VisibleDays(state domain.NavigationState) []time.Time {
	if state.ViewType != domain.ViewTypeWeek {
		return []time.Time{domain.StartOfDay(state.AnchorDate)}
	}

	monday := WeekStart(state.AnchorDate)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// VisibleRange is the half-open interval covered by VisibleDays.
func VisibleRange(state domain.NavigationState) (from, to time.Time) {
	days := VisibleDays(state)
	return days[0], days[len(days)-1].AddDate(0, 0, 1)
}
