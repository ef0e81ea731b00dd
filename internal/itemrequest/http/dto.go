package http

import (
	"time"

	"github.com/shareit-go/shareit-backend/internal/item"
	"github.com/shareit-go/shareit-backend/internal/itemrequest"
)

// CreateRequestRequest is the payload for posting a new item request.
type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// RequestItemResponse is the short form of an item offered for a request.
type RequestItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	OwnerID     int64  `json:"ownerId"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// RequestResponse is the item request representation returned to clients.
type RequestResponse struct {
	ID          int64                 `json:"id"`
	Description string                `json:"description"`
	Created     time.Time             `json:"created"`
	Items       []RequestItemResponse `json:"items"`
}

// NewRequestResponse converts a bare item request without attached items.
func NewRequestResponse(req *itemrequest.ItemRequest) RequestResponse {
	return RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       []RequestItemResponse{},
	}
}

// NewRequestDetailsResponse converts an item request with its offered items.
func NewRequestDetailsResponse(details *itemrequest.Details) RequestResponse {
	resp := NewRequestResponse(&details.ItemRequest)
	for _, it := range details.Items {
		resp.Items = append(resp.Items, newRequestItemResponse(it))
	}
	return resp
}

func newRequestDetailsResponses(details []*itemrequest.Details) []RequestResponse {
	responses := make([]RequestResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, NewRequestDetailsResponse(d))
	}
	return responses
}

func newRequestItemResponse(it *item.Item) RequestItemResponse {
	return RequestItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		OwnerID:     it.OwnerID,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}
