package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/drinks/internal/errors"
)

// ParseID parses the named path parameter as a positive integer identifier.
func ParseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", apperrors.ErrInvalidInput, name)
	}
	return id, nil
}
