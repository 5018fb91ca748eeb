// internal/handlers/respond.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"hrms_backend/internal/services"
)

// errorResponse is the error body for every non-2xx reply.
type errorResponse struct {
	Detail    string `json:"detail"`
	ErrorCode string `json:"error_code"`
}

func respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, errorResponse{
		Detail:    detail,
		ErrorCode: fmt.Sprintf("ERR_%d", status),
	})
}

// respondServiceError maps a service error onto the HTTP taxonomy. notFound
// is the message used when the error is one of the not-found sentinels,
// composed by the caller since it knows which id was asked for.
func respondServiceError(c *gin.Context, log *logrus.Logger, err error, notFound string) {
	var vErr *services.ValidationError
	var cErr *services.ConflictError
	switch {
	case errors.As(err, &vErr):
		respondError(c, http.StatusBadRequest, vErr.Message)
	case errors.As(err, &cErr):
		respondError(c, http.StatusConflict, cErr.Message)
	case errors.Is(err, services.ErrEmployeeNotFound), errors.Is(err, services.ErrAttendanceNotFound):
		respondError(c, http.StatusNotFound, notFound)
	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
