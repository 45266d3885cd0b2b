package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solarhub-backend/pkg/response"
)

// pathID parses the :id path parameter, replying 400 on garbage.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid id: must be an integer"))
		return 0, false
	}
	return id, true
}

// SearchRequest sets a table's filter text.
type SearchRequest struct {
	Term string `json:"term"`
}

// SortRequest selects a table's sort key; repeating the active key toggles
// the direction.
type SortRequest struct {
	Key string `json:"key" binding:"required"`
}
