package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shareit-go/shareit-backend/internal/identity"
	"github.com/shareit-go/shareit-backend/internal/itemrequest"
	"github.com/shareit-go/shareit-backend/internal/pkg/apperror"
	"github.com/shareit-go/shareit-backend/internal/pkg/request"
	"github.com/shareit-go/shareit-backend/internal/pkg/response"
)

var errBadBody = apperror.New(http.StatusBadRequest, "invalid request body")

// Handler wires item-request endpoints to the service.
type Handler struct {
	service itemrequest.Service
}

// NewHandler creates an item-request Handler.
func NewHandler(service itemrequest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errBadBody)
		return
	}

	created, err := h.service.Create(c.Request.Context(), identity.UserID(c), req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRequestResponse(created))
}

func (h *Handler) ListOwn(c *gin.Context) {
	details, err := h.service.ListOwn(c.Request.Context(), identity.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newRequestDetailsResponses(details))
}

func (h *Handler) ListOthers(c *gin.Context) {
	from := request.ParseInt(c.Query("from"), 0)
	size := request.ParseInt(c.Query("size"), 10)

	details, err := h.service.ListOthers(c.Request.Context(), identity.UserID(c), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newRequestDetailsResponses(details))
}

func (h *Handler) Get(c *gin.Context) {
	requestID, err := request.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.service.GetByID(c.Request.Context(), identity.UserID(c), requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestDetailsResponse(details))
}
