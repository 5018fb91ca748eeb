// internal/handlers/employee_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hrms_backend/internal/models"
	"hrms_backend/internal/services"
)

type EmployeeHandler struct {
	svc *services.EmployeeService
	log *logrus.Logger
}

func NewEmployeeHandler(svc *services.EmployeeService, log *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, log: log}
}

type employeeListResponse struct {
	Employees []models.Employee `json:"employees"`
	Total     int64             `json:"total"`
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var input services.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	emp, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusCreated, emp)
}

// List handles GET /api/employees with optional search and paging.
func (h *EmployeeHandler) List(c *gin.Context) {
	params := services.ListEmployeesParams{
		Search: c.Query("search"),
		Skip:   queryInt(c, "skip", 0),
		Limit:  clampLimit(queryInt(c, "limit", 100)),
	}
	if params.Skip < 0 {
		params.Skip = 0
	}
	employees, total, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusOK, employeeListResponse{Employees: employees, Total: total})
}

// Get handles GET /api/employees/:id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "employee id")
	if !ok {
		return
	}
	emp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, fmt.Sprintf("Employee with ID %d not found", id))
		return
	}
	c.JSON(http.StatusOK, emp)
}

// Delete handles DELETE /api/employees/:id. The employee's attendance
// records go with them.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "employee id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err, fmt.Sprintf("Employee with ID %d not found", id))
		return
	}
	c.Status(http.StatusNoContent)
}
