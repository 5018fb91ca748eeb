package services

import (
	"context"
	"math"

	"github.com/go-faster/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms_backend/internal/models"
)

// MarkAttendanceInput records one employee's status for one day.
type MarkAttendanceInput struct {
	EmployeeID uint                    `json:"employee_id" validate:"required"`
	Date       models.Date             `json:"date" validate:"required"`
	Status     models.AttendanceStatus `json:"status" validate:"required,oneof=present absent leave"`
}

// AttendanceFilter narrows a ledger listing. Date takes precedence over the
// From/To range when both are set. A Limit of zero means no cap.
type AttendanceFilter struct {
	EmployeeID uint
	Date       *models.Date
	From       *models.Date
	To         *models.Date
	Skip       int
	Limit      int
}

// EmployeeReport bundles one employee's ledger with its aggregates.
type EmployeeReport struct {
	Employee          models.Employee           `json:"employee"`
	AttendanceRecords []models.AttendanceRecord `json:"attendance_records"`
	Summary           models.AttendanceSummary  `json:"summary"`
}

// AttendanceService owns the attendance ledger.
type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// Mark records a status for (employee, date). Marking a day that is already
// recorded overwrites its status, so the ledger never grows past one row per
// employee per date. The returned flag reports whether a new row was created
// rather than an existing one overwritten.
func (s *AttendanceService) Mark(ctx context.Context, input MarkAttendanceInput) (*models.AttendanceRecord, bool, error) {
	if err := checkInput(input); err != nil {
		return nil, false, err
	}
	if input.Date.After(models.Today().Time) {
		return nil, false, newValidationError("Cannot mark attendance for future dates")
	}

	var record models.AttendanceRecord
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var emp models.Employee
		if err := tx.First(&emp, input.EmployeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return errors.Wrap(err, "find employee")
		}

		err := tx.Where("employee_id = ? AND date = ?", input.EmployeeID, input.Date).First(&record).Error
		switch {
		case err == nil:
			record.Status = input.Status
			if err := tx.Model(&record).Update("status", input.Status).Error; err != nil {
				return errors.Wrap(err, "update attendance")
			}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = models.AttendanceRecord{
				EmployeeID: input.EmployeeID,
				Date:       input.Date,
				Status:     input.Status,
			}
			// The upsert keeps last-write-wins semantics even when a
			// concurrent mark slips in between the lookup and the insert.
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
				DoUpdates: clause.Assignments(map[string]any{"status": input.Status}),
			}).Create(&record).Error; err != nil {
				if errors.Is(err, gorm.ErrForeignKeyViolated) {
					return ErrEmployeeNotFound
				}
				return errors.Wrap(err, "insert attendance")
			}
			created = true
			return nil
		default:
			return errors.Wrap(err, "find attendance")
		}
	})
	if err != nil {
		return nil, false, err
	}
	return &record, created, nil
}

// List returns ledger rows joined with directory fields, ordered by date and
// then employee, plus the total matching the filter independent of paging.
func (s *AttendanceService) List(ctx context.Context, filter AttendanceFilter) ([]models.AttendanceWithEmployee, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.AttendanceRecord{}).
		Joins("JOIN employees ON employees.id = attendance_records.employee_id")
	if filter.EmployeeID != 0 {
		q = q.Where("attendance_records.employee_id = ?", filter.EmployeeID)
	}
	if filter.Date != nil {
		q = q.Where("attendance_records.date = ?", *filter.Date)
	} else {
		if filter.From != nil {
			q = q.Where("attendance_records.date >= ?", *filter.From)
		}
		if filter.To != nil {
			q = q.Where("attendance_records.date <= ?", *filter.To)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count attendance")
	}

	q = q.Select("attendance_records.id, attendance_records.employee_id, attendance_records.date, " +
		"attendance_records.status, attendance_records.created_at, " +
		"employees.full_name AS employee_name, employees.employee_id AS employee_code, employees.department").
		Order("attendance_records.date ASC, attendance_records.employee_id ASC")
	if filter.Skip > 0 {
		q = q.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	rows := make([]models.AttendanceWithEmployee, 0)
	if err := q.Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list attendance")
	}
	return rows, total, nil
}

// Get looks up the single record for (employee, date).
func (s *AttendanceService) Get(ctx context.Context, employeeID uint, date models.Date) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := s.db.WithContext(ctx).Where("employee_id = ? AND date = ?", employeeID, date).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, errors.Wrap(err, "get attendance")
	}
	return &record, nil
}

// CountByStatus tallies records between from and to inclusive, grouped by
// status. Every status appears in the result even when its count is zero.
func (s *AttendanceService) CountByStatus(ctx context.Context, from, to models.Date) (map[models.AttendanceStatus]int64, error) {
	type statusCount struct {
		Status models.AttendanceStatus
		Count  int64
	}
	var rows []statusCount
	err := s.db.WithContext(ctx).Model(&models.AttendanceRecord{}).
		Select("status, COUNT(*) AS count").
		Where("date >= ? AND date <= ?", from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count by status")
	}

	counts := make(map[models.AttendanceStatus]int64, 3)
	for _, status := range models.AttendanceStatuses() {
		counts[status] = 0
	}
	for _, row := range rows {
		if row.Status.Valid() {
			counts[row.Status] = row.Count
		}
	}
	return counts, nil
}

// Report returns one employee's records, newest first, optionally limited to
// a date range, together with the period summary.
func (s *AttendanceService) Report(ctx context.Context, employeeID uint, from, to *models.Date) (*EmployeeReport, error) {
	var emp models.Employee
	if err := s.db.WithContext(ctx).First(&emp, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, errors.Wrap(err, "find employee")
	}

	q := s.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}
	records := make([]models.AttendanceRecord, 0)
	if err := q.Order("date DESC").Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "load attendance")
	}

	return &EmployeeReport{
		Employee:          emp,
		AttendanceRecords: records,
		Summary:           summarize(records),
	}, nil
}

func summarize(records []models.AttendanceRecord) models.AttendanceSummary {
	var sum models.AttendanceSummary
	sum.TotalDays = int64(len(records))
	for _, r := range records {
		switch r.Status {
		case models.StatusPresent:
			sum.PresentDays++
		case models.StatusAbsent:
			sum.AbsentDays++
		case models.StatusLeave:
			sum.LeaveDays++
		}
	}
	if sum.TotalDays > 0 {
		ratio := float64(sum.PresentDays) / float64(sum.TotalDays)
		sum.AttendancePercentage = math.Round(ratio*10000) / 100
	}
	return sum
}

// UpdateStatus corrects the status of an existing record by its id.
func (s *AttendanceService) UpdateStatus(ctx context.Context, id uint, status models.AttendanceStatus) (*models.AttendanceRecord, error) {
	if !status.Valid() {
		return nil, newValidationError("status must be one of: present absent leave")
	}
	var record models.AttendanceRecord
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, errors.Wrap(err, "find attendance")
	}
	if err := s.db.WithContext(ctx).Model(&record).Update("status", status).Error; err != nil {
		return nil, errors.Wrap(err, "update attendance")
	}
	record.Status = status
	return &record, nil
}

// Delete removes a single record by its id.
func (s *AttendanceService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.AttendanceRecord{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete attendance")
	}
	if res.RowsAffected == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}
