package http

import (
	"time"

	"github.com/shareit-go/shareit-backend/internal/booking"
)

// CreateBookingRequest is the wire shape of a booking creation.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// Validate enforces the request-level constraint that both dates are
// future-dated. Date ordering is validated by the service.
func (r *CreateBookingRequest) Validate() error {
	now := time.Now()
	if !r.Start.After(now) || !r.End.After(now) {
		return booking.ErrDatesNotFuture
	}
	return nil
}

// UserTag is the booker summary embedded in booking responses.
type UserTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ItemTag is the item summary embedded in booking responses.
type ItemTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Booker UserTag   `json:"booker"`
	Item   ItemTag   `json:"item"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Booker: UserTag{ID: b.BookerID, Name: b.BookerName},
		Item:   ItemTag{ID: b.ItemID, Name: b.ItemName},
	}
}

func newBookingResponses(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}
