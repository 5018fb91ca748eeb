package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hrms_backend/internal/models"
)

// parseIDParam reads the :id path parameter. On failure it writes the 400
// response and returns false.
func parseIDParam(c *gin.Context, label string) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id64 == 0 {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid %s", label))
		return 0, false
	}
	return uint(id64), true
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryDate reads an optional YYYY-MM-DD query parameter. On a malformed
// value it writes the 400 response and reports failure.
func queryDate(c *gin.Context, name string) (*models.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &d, true
}

// clampLimit keeps page sizes inside 1..100, the same bounds the listing
// endpoints advertise.
func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > 100 {
		return 100
	}
	return limit
}
