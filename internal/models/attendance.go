package models

import "time"

// AttendanceStatus is the closed set of daily attendance states.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLeave   AttendanceStatus = "leave"
)

// AttendanceStatuses lists every valid status in a stable order.
func AttendanceStatuses() []AttendanceStatus {
	return []AttendanceStatus{StatusPresent, StatusAbsent, StatusLeave}
}

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave:
		return true
	}
	return false
}

// AttendanceRecord is one employee's status for one calendar day. The
// composite unique index keeps the ledger at a single row per employee per
// date regardless of how often the day is re-marked.
type AttendanceRecord struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	EmployeeID uint             `gorm:"not null;uniqueIndex:uniq_employee_date" json:"employee_id"`
	Date       Date             `gorm:"type:date;not null;uniqueIndex:uniq_employee_date" json:"date"`
	Status     AttendanceStatus `gorm:"type:varchar(10);not null" json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// AttendanceWithEmployee is the row shape returned by ledger listings, the
// record joined with the directory fields a client needs to label it.
type AttendanceWithEmployee struct {
	ID           uint             `json:"id"`
	EmployeeID   uint             `json:"employee_id"`
	Date         Date             `json:"date"`
	Status       AttendanceStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	EmployeeName string           `json:"employee_name"`
	EmployeeCode string           `json:"employee_code"`
	Department   string           `json:"department"`
}

// AttendanceSummary aggregates one employee's ledger over a period.
type AttendanceSummary struct {
	TotalDays            int64   `json:"total_days"`
	PresentDays          int64   `json:"present_days"`
	AbsentDays           int64   `json:"absent_days"`
	LeaveDays            int64   `json:"leave_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// DashboardStats is the directory-wide snapshot for the current day.
type DashboardStats struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int64 `json:"present_today"`
	AbsentToday    int64 `json:"absent_today"`
	LeaveToday     int64 `json:"leave_today"`
	NotMarked      int64 `json:"not_marked"`
}
