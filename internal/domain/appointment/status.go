package appointment

import "github.com/tallerapp/workshop-manager/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// allowedTransitions is the lifecycle as a directed graph.
// COMPLETED and CANCELLED are terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// InitialStatus is the status every new appointment starts in,
// regardless of what the caller sends.
func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether from -> to is an allowed lifecycle step.
// A same-status update is always allowed so partial updates stay idempotent.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Transition validates the step and returns a business error the
// handlers can map to a 400.
func Transition(from, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if !CanTransition(from, to) {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}
