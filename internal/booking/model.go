package booking

import (
	"net/http"
	"time"

	"github.com/shareit-go/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrItemNotFound     = apperror.New(http.StatusNotFound, "item not found")
	ErrItemUnavailable  = apperror.New(http.StatusBadRequest, "item unavailable")
	ErrOwnItem          = apperror.New(http.StatusNotFound, "user cannot reserve own item")
	ErrUserNotFound     = apperror.New(http.StatusNotFound, "user not found")
	ErrAlreadyConfirmed = apperror.New(http.StatusBadRequest, "booking already confirmed")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start date later than end date")
	ErrDatesNotFuture   = apperror.New(http.StatusBadRequest, "booking dates must be in the future")
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is a terminal state that no service operation sets; it can
	// only appear through direct data manipulation and is treated as read-only.
	StatusCanceled Status = "CANCELED"
)

// Booking is one reservation request for an item. Rows are hydrated with the
// item and booker summaries needed by the response shape.
type Booking struct {
	ID         int64
	Start      time.Time
	End        time.Time
	Status     Status
	ItemID     int64
	ItemName   string
	BookerID   int64
	BookerName string
}
