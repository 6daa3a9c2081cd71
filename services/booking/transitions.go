package booking

import "cleanly/models"

// legalTransitions is the booking state machine: Pending may be accepted or
// cancelled, Accepted may be completed or cancelled, Completed and Cancelled
// are terminal.
var legalTransitions = map[string][]string{
	models.BookingPending:   {models.BookingAccepted, models.BookingCancelled},
	models.BookingAccepted:  {models.BookingCompleted, models.BookingCancelled},
	models.BookingCompleted: {},
	models.BookingCancelled: {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is a known booking status.
func IsValidStatus(s string) bool {
	_, ok := legalTransitions[s]
	return ok
}
