package user

import (
	"net/http"

	"github.com/shareit-go/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailExists = apperror.New(http.StatusConflict, "email already exists")
)

// User is an account identity. Email is unique across the system.
type User struct {
	ID    int64
	Name  string
	Email string
}
