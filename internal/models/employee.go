// internal/models/employee.go
package models

import "time"

// Employee is a directory entry. EmployeeCode is the human-facing badge
// identifier and is exposed as employee_id on the wire, distinct from the
// numeric primary key.
type Employee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeCode string    `gorm:"column:employee_id;type:varchar(50);uniqueIndex;not null" json:"employee_id"`
	FullName     string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Position     string    `gorm:"type:varchar(100);not null" json:"position"`
	Department   string    `gorm:"type:varchar(50);not null" json:"department"`
	DateJoined   Date      `gorm:"type:date;not null" json:"date_joined"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	AttendanceRecords []AttendanceRecord `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}
