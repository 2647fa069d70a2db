package repository

import (
	"context"
	"time"

	"github.com/yamato-estate/attendance/backend/internal/domain"
)

func (r *Repository) CreateAttendanceRecord(record *domain.AttendanceRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO part_time_attendance (employee_id, date, clock_in_time, clock_in_location, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	args := []any{record.EmployeeID, record.Date, record.ClockInTime, record.ClockInLocation, record.Notes}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.CreatedAt, &record.Version); err != nil {
		return err
	}

	return nil
}

// GetOpenAttendanceRecord returns the record for the employee/date that has
// not been clocked out yet.
func (r *Repository) GetOpenAttendanceRecord(employeeID string, date string) (*domain.AttendanceRecord, error) {
	query := `
		SELECT id, to_char(clock_in_time, 'HH24:MI'), clock_in_location, notes, created_at, version
		FROM part_time_attendance
		WHERE employee_id::text = $1 AND date = $2::date AND clock_out_time IS NULL
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	record := &domain.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       date,
	}

	dst := []any{&record.ID, &record.ClockInTime, &record.ClockInLocation, &record.Notes, &record.CreatedAt, &record.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, employeeID, date).Scan(dst...); err != nil {
		return nil, err
	}

	return record, nil
}

func (r *Repository) CloseAttendanceRecord(record *domain.AttendanceRecord) error {
	query := `
		UPDATE part_time_attendance
		SET
			clock_out_time = $1,
			clock_out_location = $2,
			total_hours = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{record.ClockOutTime, record.ClockOutLocation, record.TotalHours, record.ID, record.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&record.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAttendanceRecords(employeeID string, from string, to string) ([]*domain.AttendanceRecord, error) {
	query := `
		SELECT
			id,
			employee_id,
			date::text,
			to_char(clock_in_time, 'HH24:MI'),
			to_char(clock_out_time, 'HH24:MI'),
			total_hours,
			clock_in_location,
			clock_out_location,
			notes,
			created_at,
			version
		FROM part_time_attendance
		WHERE ($1 = '' OR employee_id::text = $1)
		  AND (NULLIF($2, '') IS NULL OR date >= NULLIF($2, '')::date)
		  AND (NULLIF($3, '') IS NULL OR date <= NULLIF($3, '')::date)
		ORDER BY date DESC, clock_in_time DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.AttendanceRecord, 0)
	for rows.Next() {
		record := &domain.AttendanceRecord{}
		dst := []any{
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&record.ClockInTime,
			&record.ClockOutTime,
			&record.TotalHours,
			&record.ClockInLocation,
			&record.ClockOutLocation,
			&record.Notes,
			&record.CreatedAt,
			&record.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
