package booking

import (
	"time"

	"github.com/Masterminds/squirrel"
)

// Role selects whose bookings a list query is scoped to: the user who placed
// them or the user who owns the booked items.
type Role int

const (
	RoleBooker Role = iota
	RoleOwner
)

func (r Role) scopeColumn() string {
	if r == RoleOwner {
		return "i.owner_id"
	}
	return "b.booker_id"
}

// Classify maps a role, a state filter and the evaluation instant to the
// predicate set of the corresponding list query. The booker-role FUTURE bucket
// additionally hides rejected bookings; the owner-role variant does not.
func Classify(role Role, userID int64, state State, now time.Time) []squirrel.Sqlizer {
	conds := []squirrel.Sqlizer{squirrel.Eq{role.scopeColumn(): userID}}

	switch state {
	case StateCurrent:
		conds = append(conds,
			squirrel.Lt{"b.start_date": now},
			squirrel.Gt{"b.end_date": now},
		)
	case StatePast:
		conds = append(conds,
			squirrel.Lt{"b.start_date": now},
			squirrel.Lt{"b.end_date": now},
		)
	case StateFuture:
		conds = append(conds,
			squirrel.Gt{"b.start_date": now},
			squirrel.Gt{"b.end_date": now},
		)
		if role == RoleBooker {
			conds = append(conds, squirrel.NotEq{"b.status": StatusRejected})
		}
	case StateWaiting:
		conds = append(conds, squirrel.Eq{"b.status": StatusWaiting})
	case StateRejected:
		conds = append(conds, squirrel.Eq{"b.status": StatusRejected})
	case StateAll:
		// no extra predicate, full set for the role
	}

	return conds
}
