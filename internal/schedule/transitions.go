package schedule

import (
	"fmt"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

// TransitionPolicy decides whether an appointment may move between two
// statuses. Every status change goes through one of these.
type TransitionPolicy func(from, to domain.AppointmentStatus) error

// PermissiveTransitions accepts any move between known statuses.
func PermissiveTransitions(_, to domain.AppointmentStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrTransitionNotAllowed, to)
	}
	return nil
}

var guardedTransitions = map[domain.AppointmentStatus][]domain.AppointmentStatus{
	domain.AppointmentStatusPending: {
		domain.AppointmentStatusConfirmed,
		domain.AppointmentStatusWaitingRoom,
		domain.AppointmentStatusCancelled,
	},
	domain.AppointmentStatusConfirmed: {
		domain.AppointmentStatusPending,
		domain.AppointmentStatusWaitingRoom,
		domain.AppointmentStatusInProgress,
		domain.AppointmentStatusCancelled,
	},
	domain.AppointmentStatusWaitingRoom: {
		domain.AppointmentStatusInProgress,
		domain.AppointmentStatusCancelled,
	},
	domain.AppointmentStatusInProgress: {
		domain.AppointmentStatusCompleted,
	},
}

// GuardedTransitions follows the clinic workflow. Completed and cancelled
// appointments are final.
func GuardedTransitions(from, to domain.AppointmentStatus) error {
	if err := PermissiveTransitions(from, to); err != nil {
		return err
	}
	if from == to || from == "" {
		return nil
	}

	for _, allowed := range guardedTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", domain.ErrTransitionNotAllowed, from, to)
}

func NewTransitionPolicy(guarded bool) TransitionPolicy {
	if guarded {
		return GuardedTransitions
	}
	return PermissiveTransitions
}
