package booking

import (
	"net/http"

	"github.com/shareit-go/shareit-backend/internal/pkg/apperror"
)

// ErrUnknownState is returned for a state string outside the State variants.
var ErrUnknownState = apperror.New(http.StatusBadRequest, "unknown state")

// State is a query-time classification of bookings by time window and status.
// It selects which list query to run and is never persisted.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState parses a raw state string. It is total: every input yields either
// a valid State or ErrUnknownState.
func ParseState(raw string) (State, error) {
	switch s := State(raw); s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", ErrUnknownState
	}
}
