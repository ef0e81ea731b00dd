package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-go/shareit-backend/internal/pkg/apperror"
)

var errBadID = apperror.New(http.StatusBadRequest, "invalid id")

// PathID parses the named path parameter as an int64 identity.
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}
