package item

import (
	"net/http"
	"time"

	"github.com/shareit-go/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "item not found")
	ErrOwnerNotFound      = apperror.New(http.StatusNotFound, "owner not found")
	ErrUserNotFound       = apperror.New(http.StatusNotFound, "user not found")
	ErrRequestNotFound    = apperror.New(http.StatusNotFound, "item request not found")
	ErrNoMatchingBookings = apperror.New(http.StatusBadRequest, "no matching bookings")
	ErrCommentForbidden   = apperror.New(http.StatusBadRequest, "forbidden to add comments")
	// A missing comment author surfaces as a validation failure, not a 404.
	ErrAuthorNotFound = apperror.New(http.StatusBadRequest, "user not found")
)

// Item is a listed thing a user offers for sharing. RequestID links the item
// to the item request it answers, when there is one.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// Comment is feedback left by a booker after a completed booking.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// BookingTag is the booking summary shown to an item's owner.
type BookingTag struct {
	ID       int64
	BookerID int64
}

// Details is an item together with its comments and, for the owner's eyes,
// the adjacent bookings.
type Details struct {
	Item
	LastBooking *BookingTag
	NextBooking *BookingTag
	Comments    []*Comment
}
