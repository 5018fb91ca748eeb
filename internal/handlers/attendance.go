// internal/handlers/attendance.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hrms_backend/internal/models"
	"hrms_backend/internal/services"
)

type AttendanceHandler struct {
	svc *services.AttendanceService
	log *logrus.Logger
}

func NewAttendanceHandler(svc *services.AttendanceService, log *logrus.Logger) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, log: log}
}

type attendanceListResponse struct {
	Records []models.AttendanceWithEmployee `json:"records"`
	Total   int64                           `json:"total"`
}

type attendanceSummaryResponse struct {
	From   models.Date                       `json:"from"`
	To     models.Date                       `json:"to"`
	Counts map[models.AttendanceStatus]int64 `json:"counts"`
	Total  int64                             `json:"total"`
}

type updateStatusRequest struct {
	Status models.AttendanceStatus `json:"status"`
}

// Mark handles POST /api/attendance. Marking a day again overwrites the
// earlier status, answering 200 instead of 201.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var input services.MarkAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	record, created, err := h.svc.Mark(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, h.log, err, fmt.Sprintf("Employee with ID %d not found", input.EmployeeID))
		return
	}
	if created {
		c.JSON(http.StatusCreated, record)
		return
	}
	c.JSON(http.StatusOK, record)
}

// List handles GET /api/attendance with optional employee_id, date, from,
// to, skip and limit parameters.
func (h *AttendanceHandler) List(c *gin.Context) {
	filter := services.AttendanceFilter{
		Skip:  queryInt(c, "skip", 0),
		Limit: clampLimit(queryInt(c, "limit", 100)),
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if raw := c.Query("employee_id"); raw != "" {
		id := queryInt(c, "employee_id", 0)
		if id <= 0 {
			respondError(c, http.StatusBadRequest, "invalid employee_id")
			return
		}
		filter.EmployeeID = uint(id)
	}
	var ok bool
	if filter.Date, ok = queryDate(c, "date"); !ok {
		return
	}
	if filter.From, ok = queryDate(c, "from"); !ok {
		return
	}
	if filter.To, ok = queryDate(c, "to"); !ok {
		return
	}
	records, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusOK, attendanceListResponse{Records: records, Total: total})
}

// GetRecord handles GET /api/attendance/record, the point lookup for one
// employee on one date.
func (h *AttendanceHandler) GetRecord(c *gin.Context) {
	id := queryInt(c, "employee_id", 0)
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "employee_id is required")
		return
	}
	raw := c.Query("date")
	if raw == "" {
		respondError(c, http.StatusBadRequest, "date is required")
		return
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	record, err := h.svc.Get(c.Request.Context(), uint(id), date)
	if err != nil {
		respondServiceError(c, h.log, err,
			fmt.Sprintf("Attendance record not found for employee %d on %s", id, date))
		return
	}
	c.JSON(http.StatusOK, record)
}

// Summary handles GET /api/attendance/summary, counting records per status
// for a single date or an inclusive from/to range.
func (h *AttendanceHandler) Summary(c *gin.Context) {
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}
	if date != nil {
		from, to = date, date
	}
	if from == nil || to == nil {
		respondError(c, http.StatusBadRequest, "date or a from/to range is required")
		return
	}

	counts, err := h.svc.CountByStatus(c.Request.Context(), *from, *to)
	if err != nil {
		respondServiceError(c, h.log, err, "")
		return
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	c.JSON(http.StatusOK, attendanceSummaryResponse{From: *from, To: *to, Counts: counts, Total: total})
}

// EmployeeReport handles GET /api/attendance/employee/:id, one employee's
// ledger with aggregates, optionally bounded by from/to.
func (h *AttendanceHandler) EmployeeReport(c *gin.Context) {
	id, ok := parseIDParam(c, "employee id")
	if !ok {
		return
	}
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}
	report, err := h.svc.Report(c.Request.Context(), id, from, to)
	if err != nil {
		respondServiceError(c, h.log, err, fmt.Sprintf("Employee with ID %d not found", id))
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateStatus handles PUT /api/attendance/:id, correcting the status of an
// existing record.
func (h *AttendanceHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "attendance record id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	record, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, h.log, err, fmt.Sprintf("Attendance record with ID %d not found", id))
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /api/attendance/:id.
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "attendance record id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err, fmt.Sprintf("Attendance record with ID %d not found", id))
		return
	}
	c.Status(http.StatusNoContent)
}
