package appointment

import (
	"testing"

	"github.com/tallerapp/workshop-manager/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusCompleted, false},
		// same-status updates stay idempotent
		{StatusPending, StatusPending, true},
		{StatusCompleted, StatusCompleted, true},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestTransitionErrors(t *testing.T) {
	if err := Transition(StatusPending, Status("ARCHIVED")); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}

	if err := Transition(StatusCompleted, StatusPending); !httperr.IsBusiness(err, "invalid_status_transition") {
		t.Fatalf("expected invalid_status_transition, got %v", err)
	}

	if err := Transition(StatusPending, StatusInProgress); err != nil {
		t.Fatalf("expected pending -> in_progress allowed, got %v", err)
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Fatalf("expected initial status PENDING, got %s", InitialStatus())
	}
}
