package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-go/shareit-backend/internal/booking"
	"github.com/shareit-go/shareit-backend/internal/identity"
	"github.com/shareit-go/shareit-backend/internal/pkg/request"
	"github.com/shareit-go/shareit-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), identity.UserID(c), booking.CreateRequest{
		ItemID: body.ItemID,
		Start:  body.Start,
		End:    body.End,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Confirm(c *gin.Context) {
	bookingID, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid approved parameter"})
		return
	}

	b, err := h.service.Confirm(c.Request.Context(), identity.UserID(c), bookingID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	bookingID, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.GetByIDForParticipant(c.Request.Context(), identity.UserID(c), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) ListByBooker(c *gin.Context) {
	h.list(c, h.service.ListByBooker)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	h.list(c, h.service.ListByOwner)
}

type listQuery func(ctx context.Context, userID int64, state string, from, size int) ([]*booking.Booking, error)

func (h *Handler) list(c *gin.Context, query listQuery) {
	state := c.DefaultQuery("state", string(booking.StateAll))
	from := request.ParseInt(c.Query("from"), 0)
	size := request.ParseInt(c.Query("size"), 10)

	bookings, err := query(c.Request.Context(), identity.UserID(c), state, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookingResponses(bookings))
}
