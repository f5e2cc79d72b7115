package model

import "fmt"

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// allowedTransitions is the single source of truth for status changes.
// COMPLETED and CANCELLED are terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// OpenStatuses are the states that occupy the vehicle for overlap checks.
var OpenStatuses = []Status{StatusPending, StatusConfirmed, StatusActive}

func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if _, ok := allowedTransitions[status]; !ok {
		return "", fmt.Errorf("unknown booking status: %q", value)
	}

	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s Status) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// Deletable reports whether a booking in this status may be removed.
// Bookings that were confirmed or have run cannot be deleted.
func (s Status) Deletable() bool {
	return s == StatusPending || s == StatusCancelled
}
