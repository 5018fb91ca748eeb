package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"gorm.io/gorm"

	"hrms_backend/internal/models"
)

// CreateEmployeeInput carries the fields for a new directory entry. Values
// are trimmed and the email lowercased before validation.
type CreateEmployeeInput struct {
	EmployeeCode string      `json:"employee_id" validate:"required,max=50,empcode"`
	FullName     string      `json:"full_name" validate:"required,min=2,max=100"`
	Email        string      `json:"email" validate:"required,email,max=100"`
	Position     string      `json:"position" validate:"required,max=100"`
	Department   string      `json:"department" validate:"required,max=50"`
	DateJoined   models.Date `json:"date_joined" validate:"required"`
}

func (in *CreateEmployeeInput) normalize() {
	in.EmployeeCode = strings.TrimSpace(in.EmployeeCode)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Position = strings.TrimSpace(in.Position)
	in.Department = strings.TrimSpace(in.Department)
}

// ListEmployeesParams filters and pages the directory listing. A Limit of
// zero means no cap.
type ListEmployeesParams struct {
	Search string
	Skip   int
	Limit  int
}

// EmployeeService owns the employee directory.
type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (*models.Employee, error) {
	input.normalize()
	if err := checkInput(input); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var count int64
	if err := db.Model(&models.Employee{}).Where("employee_id = ?", input.EmployeeCode).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "check employee id")
	}
	if count > 0 {
		return nil, newConflictError(fmt.Sprintf("Employee with ID '%s' already exists", input.EmployeeCode))
	}
	if err := db.Model(&models.Employee{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "check employee email")
	}
	if count > 0 {
		return nil, newConflictError(fmt.Sprintf("Employee with email '%s' already exists", input.Email))
	}

	emp := &models.Employee{
		EmployeeCode: input.EmployeeCode,
		FullName:     input.FullName,
		Email:        input.Email,
		Position:     input.Position,
		Department:   input.Department,
		DateJoined:   input.DateJoined,
	}
	if err := db.Create(emp).Error; err != nil {
		// The unique indexes are the backstop for writes racing past the
		// checks above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflictError("An employee with this ID or email already exists")
		}
		return nil, errors.Wrap(err, "create employee")
	}
	return emp, nil
}

// List returns employees in insertion order along with the total number of
// entries matching the search, independent of paging.
func (s *EmployeeService) List(ctx context.Context, params ListEmployeesParams) ([]models.Employee, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.Employee{})
	if search := strings.TrimSpace(params.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(employee_id) LIKE ? OR LOWER(department) LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count employees")
	}

	q = q.Order("id ASC")
	if params.Skip > 0 {
		q = q.Offset(params.Skip)
	}
	if params.Limit > 0 {
		q = q.Limit(params.Limit)
	}

	employees := make([]models.Employee, 0)
	if err := q.Find(&employees).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list employees")
	}
	return employees, total, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, errors.Wrap(err, "get employee")
	}
	return &emp, nil
}

// Delete removes an employee and their attendance records in one
// transaction, so a failure partway leaves the ledger untouched.
func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var emp models.Employee
		if err := tx.First(&emp, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return errors.Wrap(err, "find employee")
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.AttendanceRecord{}).Error; err != nil {
			return errors.Wrap(err, "delete attendance records")
		}
		if err := tx.Delete(&emp).Error; err != nil {
			return errors.Wrap(err, "delete employee")
		}
		return nil
	})
}

func (s *EmployeeService) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Employee{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "count employees")
	}
	return total, nil
}
