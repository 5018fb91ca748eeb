package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hrms_backend/internal/models"
)

func TestAttendanceService_MarkCreates(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)
	ctx := context.Background()

	emp := seedEmployee(t, employees, "EMP001")

	record, created, err := attendance.Mark(ctx, MarkAttendanceInput{
		EmployeeID: emp.ID,
		Date:       models.NewDate(2024, time.June, 3),
		Status:     models.StatusPresent,
	})
	require.NoError(t, err)
	require.True(t, created)
	require.NotZero(t, record.ID)
	require.Equal(t, emp.ID, record.EmployeeID)
	require.Equal(t, models.NewDate(2024, time.June, 3), record.Date)
	require.Equal(t, models.StatusPresent, record.Status)
}

func TestAttendanceService_MarkOverwritesSameDay(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)
	ctx := context.Background()

	emp := seedEmployee(t, employees, "EMP001")
	day := models.NewDate(2024, time.June, 3)

	first, created, err := attendance.Mark(ctx, MarkAttendanceInput{
		EmployeeID: emp.ID, Date: day, Status: models.StatusPresent,
	})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := attendance.Mark(ctx, MarkAttendanceInput{
		EmployeeID: emp.ID, Date: day, Status: models.StatusAbsent,
	})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, models.StatusAbsent, second.Status)

	// Still exactly one row for the (employee, date) pair.
	var count int64
	require.NoError(t, db.Model(&models.AttendanceRecord{}).
		Where("employee_id = ?", emp.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	got, err := attendance.Get(ctx, emp.ID, day)
	require.NoError(t, err)
	require.Equal(t, models.StatusAbsent, got.Status)
}

func TestAttendanceService_MarkUnknownEmployee(t *testing.T) {
	attendance := NewAttendanceService(newTestDB(t))

	_, _, err := attendance.Mark(context.Background(), MarkAttendanceInput{
		EmployeeID: 999,
		Date:       models.NewDate(2024, time.June, 3),
		Status:     models.StatusPresent,
	})
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestAttendanceService_MarkValidation(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)
	ctx := context.Background()

	emp := seedEmployee(t, employees, "EMP001")

	cases := []struct {
		name    string
		input   MarkAttendanceInput
		message string
	}{
		{
			"missing employee",
			MarkAttendanceInput{Date: models.NewDate(2024, time.June, 3), Status: models.StatusPresent},
			"employee_id is required",
		},
		{
			"missing date",
			MarkAttendanceInput{EmployeeID: emp.ID, Status: models.StatusPresent},
			"date is required",
		},
		{
			"invalid status",
			MarkAttendanceInput{EmployeeID: emp.ID, Date: models.NewDate(2024, time.June, 3), Status: "late"},
			"status must be one of",
		},
		{
			"future date",
			MarkAttendanceInput{
				EmployeeID: emp.ID,
				Date:       models.DateOf(time.Now().AddDate(0, 0, 2)),
				Status:     models.StatusPresent,
			},
			"Cannot mark attendance for future dates",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := attendance.Mark(ctx, tc.input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Contains(t, vErr.Message, tc.message)
		})
	}
}

func TestAttendanceService_GetMissing(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)

	emp := seedEmployee(t, employees, "EMP001")

	_, err := attendance.Get(context.Background(), emp.ID, models.NewDate(2024, time.June, 3))
	require.ErrorIs(t, err, ErrAttendanceNotFound)
}

func TestAttendanceService_ListOrdersAndJoins(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)
	ctx := context.Background()

	alice := seedEmployee(t, employees, "EMP001")
	bob := seedEmployee(t, employees, "EMP002")

	june3 := models.NewDate(2024, time.June, 3)
	june4 := models.NewDate(2024, time.June, 4)
	mark := func(empID uint, day models.Date, status models.AttendanceStatus) {
		t.Helper()
		_, _, err := attendance.Mark(ctx, MarkAttendanceInput{EmployeeID: empID, Date: day, Status: status})
		require.NoError(t, err)
	}
	mark(bob.ID, june4, models.StatusLeave)
	mark(alice.ID, june4, models.StatusPresent)
	mark(bob.ID, june3, models.StatusAbsent)
	mark(alice.ID, june3, models.StatusPresent)

	rows, total, err := attendance.List(ctx, AttendanceFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
	require.Len(t, rows, 4)

	// Ordered by date, then employee.
	require.Equal(t, june3, rows[0].Date)
	require.Equal(t, alice.ID, rows[0].EmployeeID)
	require.Equal(t, june3, rows[1].Date)
	require.Equal(t, bob.ID, rows[1].EmployeeID)
	require.Equal(t, june4, rows[2].Date)
	require.Equal(t, alice.ID, rows[2].EmployeeID)
	require.Equal(t, june4, rows[3].Date)
	require.Equal(t, bob.ID, rows[3].EmployeeID)

	require.Equal(t, "Jane Smith", rows[0].EmployeeName)
	require.Equal(t, "EMP001", rows[0].EmployeeCode)
	require.Equal(t, "Platform", rows[0].Department)
}

func TestAttendanceService_ListFilters(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)
	ctx := context.Background()

	alice := seedEmployee(t, employees, "EMP001")
	bob := seedEmployee(t, employees, "EMP002")

	days := []models.Date{
		models.NewDate(2024, time.June, 1),
		models.NewDate(2024, time.June, 2),
		models.NewDate(2024, time.June, 3),
	}
	for _, day := range days {
		for _, emp := range []*models.Employee{alice, bob} {
			_, _, err := attendance.Mark(ctx, MarkAttendanceInput{
				EmployeeID: emp.ID, Date: day, Status: models.StatusPresent,
			})
			require.NoError(t, err)
		}
	}

	byEmployee, total, err := attendance.List(ctx, AttendanceFilter{EmployeeID: alice.ID})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	for _, row := range byEmployee {
		require.Equal(t, alice.ID, row.EmployeeID)
	}

	byDate, total, err := attendance.List(ctx, AttendanceFilter{Date: &days[1]})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	for _, row := range byDate {
		require.Equal(t, days[1], row.Date)
	}

	ranged, total, err := attendance.List(ctx, AttendanceFilter{From: &days[1], To: &days[2]})
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
	require.Len(t, ranged, 4)

	paged, total, err := attendance.List(ctx, AttendanceFilter{Skip: 2, Limit: 3})
	require.NoError(t, err)
	require.EqualValues(t, 6, total)
	require.Len(t, paged, 3)
}

func TestAttendanceService_CountByStatus(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)
	ctx := context.Background()

	emps := []*models.Employee{
		seedEmployee(t, employees, "EMP001"),
		seedEmployee(t, employees, "EMP002"),
		seedEmployee(t, employees, "EMP003"),
	}
	june3 := models.NewDate(2024, time.June, 3)
	june4 := models.NewDate(2024, time.June, 4)

	for _, mark := range []MarkAttendanceInput{
		{EmployeeID: emps[0].ID, Date: june3, Status: models.StatusPresent},
		{EmployeeID: emps[1].ID, Date: june3, Status: models.StatusPresent},
		{EmployeeID: emps[2].ID, Date: june3, Status: models.StatusAbsent},
		{EmployeeID: emps[0].ID, Date: june4, Status: models.StatusLeave},
	} {
		_, _, err := attendance.Mark(ctx, mark)
		require.NoError(t, err)
	}

	day, err := attendance.CountByStatus(ctx, june3, june3)
	require.NoError(t, err)
	require.EqualValues(t, 2, day[models.StatusPresent])
	require.EqualValues(t, 1, day[models.StatusAbsent])
	require.EqualValues(t, 0, day[models.StatusLeave])

	var sum int64
	for _, n := range day {
		sum += n
	}
	require.EqualValues(t, 3, sum)

	ranged, err := attendance.CountByStatus(ctx, june3, june4)
	require.NoError(t, err)
	require.EqualValues(t, 2, ranged[models.StatusPresent])
	require.EqualValues(t, 1, ranged[models.StatusAbsent])
	require.EqualValues(t, 1, ranged[models.StatusLeave])
}

func TestAttendanceService_Report(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)
	ctx := context.Background()

	emp := seedEmployee(t, employees, "EMP001")

	marks := []struct {
		day    int
		status models.AttendanceStatus
	}{
		{1, models.StatusPresent},
		{2, models.StatusAbsent},
		{3, models.StatusPresent},
		{4, models.StatusLeave},
	}
	for _, m := range marks {
		_, _, err := attendance.Mark(ctx, MarkAttendanceInput{
			EmployeeID: emp.ID,
			Date:       models.NewDate(2024, time.June, m.day),
			Status:     m.status,
		})
		require.NoError(t, err)
	}

	report, err := attendance.Report(ctx, emp.ID, nil, nil)
	require.NoError(t, err)
	require.Equal(t, emp.ID, report.Employee.ID)
	require.Len(t, report.AttendanceRecords, 4)
	// Newest first.
	require.Equal(t, models.NewDate(2024, time.June, 4), report.AttendanceRecords[0].Date)
	require.Equal(t, models.NewDate(2024, time.June, 1), report.AttendanceRecords[3].Date)

	require.EqualValues(t, 4, report.Summary.TotalDays)
	require.EqualValues(t, 2, report.Summary.PresentDays)
	require.EqualValues(t, 1, report.Summary.AbsentDays)
	require.EqualValues(t, 1, report.Summary.LeaveDays)
	require.InDelta(t, 50.0, report.Summary.AttendancePercentage, 0.001)

	from := models.NewDate(2024, time.June, 2)
	to := models.NewDate(2024, time.June, 3)
	bounded, err := attendance.Report(ctx, emp.ID, &from, &to)
	require.NoError(t, err)
	require.Len(t, bounded.AttendanceRecords, 2)
	require.EqualValues(t, 2, bounded.Summary.TotalDays)
	require.EqualValues(t, 1, bounded.Summary.PresentDays)
}

func TestAttendanceService_ReportRoundsPercentage(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)
	ctx := context.Background()

	emp := seedEmployee(t, employees, "EMP001")
	statuses := []models.AttendanceStatus{models.StatusPresent, models.StatusAbsent, models.StatusAbsent}
	for i, status := range statuses {
		_, _, err := attendance.Mark(ctx, MarkAttendanceInput{
			EmployeeID: emp.ID,
			Date:       models.NewDate(2024, time.June, i+1),
			Status:     status,
		})
		require.NoError(t, err)
	}

	report, err := attendance.Report(ctx, emp.ID, nil, nil)
	require.NoError(t, err)
	require.InDelta(t, 33.33, report.Summary.AttendancePercentage, 0.001)
}

func TestAttendanceService_ReportUnknownEmployee(t *testing.T) {
	attendance := NewAttendanceService(newTestDB(t))

	_, err := attendance.Report(context.Background(), 404, nil, nil)
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestAttendanceService_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)
	ctx := context.Background()

	emp := seedEmployee(t, employees, "EMP001")
	record, _, err := attendance.Mark(ctx, MarkAttendanceInput{
		EmployeeID: emp.ID,
		Date:       models.NewDate(2024, time.June, 3),
		Status:     models.StatusAbsent,
	})
	require.NoError(t, err)

	updated, err := attendance.UpdateStatus(ctx, record.ID, models.StatusLeave)
	require.NoError(t, err)
	require.Equal(t, record.ID, updated.ID)
	require.Equal(t, models.StatusLeave, updated.Status)

	got, err := attendance.Get(ctx, emp.ID, record.Date)
	require.NoError(t, err)
	require.Equal(t, models.StatusLeave, got.Status)

	_, err = attendance.UpdateStatus(ctx, record.ID, "half-day")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = attendance.UpdateStatus(ctx, 999, models.StatusPresent)
	require.ErrorIs(t, err, ErrAttendanceNotFound)
}

func TestAttendanceService_Delete(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db)
	attendance := NewAttendanceService(db)
	ctx := context.Background()

	emp := seedEmployee(t, employees, "EMP001")
	record, _, err := attendance.Mark(ctx, MarkAttendanceInput{
		EmployeeID: emp.ID,
		Date:       models.NewDate(2024, time.June, 3),
		Status:     models.StatusPresent,
	})
	require.NoError(t, err)

	require.NoError(t, attendance.Delete(ctx, record.ID))

	_, err = attendance.Get(ctx, emp.ID, record.Date)
	require.ErrorIs(t, err, ErrAttendanceNotFound)

	require.ErrorIs(t, attendance.Delete(ctx, record.ID), ErrAttendanceNotFound)
}
