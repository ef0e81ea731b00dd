package itemrequest

import (
	"net/http"
	"time"

	"github.com/shareit-go/shareit-backend/internal/item"
	"github.com/shareit-go/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "item request not found")
	ErrUserNotFound = apperror.New(http.StatusNotFound, "user not found")
)

// ItemRequest is a user's announcement that they need an item. Other users
// respond by listing items that reference the request.
type ItemRequest struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}

// Details is an item request with the items offered in response to it.
type Details struct {
	ItemRequest
	Items []*item.Item
}
