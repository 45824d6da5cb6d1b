package response

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"govdataviz/internal/domain"
)

// QueryInt читает целый query-параметр. Пустой — def, нечисловой — domain.ErrInvalidArgument.
func QueryInt(c *gin.Context, name string, def int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidArgument, name)
	}
	return v, nil
}
