package domain

import (
	"encoding/json"
	"strings"
	"time"
)

type ViewType string

const (
	ViewTypeDay  ViewType = "day"
	ViewTypeWeek ViewType = "week"
)

func ParseViewType(value string) (ViewType, error) {
	switch ViewType(strings.ToLower(strings.TrimSpace(value))) {
	case ViewTypeDay:
		return ViewTypeDay, nil
	case ViewTypeWeek:
		return ViewTypeWeek, nil
	default:
		return "", ErrInvalidViewType
	}
}

// NavigationState is the anchor date and granularity a view is showing.
type NavigationState struct {
	AnchorDate time.Time
	ViewType   ViewType
}

func (s NavigationState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AnchorDate string   `json:"anchorDate"`
		ViewType   ViewType `json:"viewType"`
	}{
		AnchorDate: s.AnchorDate.Format(DateLayout),
		ViewType:   s.ViewType,
	})
}

type CreateViewRequest struct {
	Date     string `json:"date"`
	ViewType string `json:"viewType"`
	DoctorID string `json:"doctorId"`
}

type ViewTypeRequest struct {
	ViewType string `json:"viewType" binding:"required"`
}

type DoctorFilterRequest struct {
	DoctorID string `json:"doctorId"`
}
