package httpHandler

import (
	"errors"
	"net/http"
	"strconv"

	"smarthome-server/usecases"

	"github.com/gin-gonic/gin"
)

// paramID parses the :id route parameter. Writes a 400 response and returns
// false when the parameter is not a valid integer identifier.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id parameter",
		})
		return 0, false
	}
	return uint(id), true
}

// statusFromError maps the usecase error taxonomy onto HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecases.ErrReferentialViolation):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
