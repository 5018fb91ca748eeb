// internal/handlers/dashboard_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hrms_backend/internal/models"
	"hrms_backend/internal/services"
)

type DashboardHandler struct {
	employees  *services.EmployeeService
	attendance *services.AttendanceService
	log        *logrus.Logger
}

func NewDashboardHandler(employees *services.EmployeeService, attendance *services.AttendanceService, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{employees: employees, attendance: attendance, log: log}
}

// Stats handles GET /api/dashboard/stats, today's attendance picture across
// the whole directory.
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	today := models.Today()

	total, err := h.employees.Count(ctx)
	if err != nil {
		respondServiceError(c, h.log, err, "")
		return
	}
	counts, err := h.attendance.CountByStatus(ctx, today, today)
	if err != nil {
		respondServiceError(c, h.log, err, "")
		return
	}

	marked := counts[models.StatusPresent] + counts[models.StatusAbsent] + counts[models.StatusLeave]
	c.JSON(http.StatusOK, models.DashboardStats{
		TotalEmployees: total,
		PresentToday:   counts[models.StatusPresent],
		AbsentToday:    counts[models.StatusAbsent],
		LeaveToday:     counts[models.StatusLeave],
		NotMarked:      total - marked,
	})
}
