package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yamato-estate/attendance/backend/internal/domain"
)

func (r *Repository) CreateShiftRequest(req *domain.ShiftRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	// start_date and end_date stay NULL for availability requests, they are
	// only filled by the other request types.
	query := `
		INSERT INTO shift_requests (employee_id, request_type, request_scope, status, notes, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	args := []any{req.EmployeeID, req.RequestType, req.RequestScope, req.Status, req.Notes, req.StartDate, req.EndDate}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.CreatedAt, &req.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateShiftRequestDetails(details []*domain.ShiftRequestDetail) error {
	if len(details) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	// One multi-row insert so the batch either lands completely or not at all.
	var sb strings.Builder
	sb.WriteString(`INSERT INTO shift_request_details (shift_request_id, date, start_time, end_time, hours, notes) VALUES `)

	args := make([]any, 0, len(details)*6)
	for i, d := range details {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, d.ShiftRequestID, d.Date, d.StartTime, d.EndTime, d.Hours, d.Notes)
	}

	if _, err := r.dbpool.ExecContext(ctx, sb.String(), args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftRequest(id string) error {
	query := `
		DELETE FROM shift_requests WHERE id::text = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShiftRequestByID(id string) (*domain.ShiftRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT employee_id, request_type, request_scope, status, notes, start_date::text, end_date::text, created_at, version
		FROM shift_requests WHERE id::text = $1
	`

	req := &domain.ShiftRequest{
		ID: id,
	}

	dst := []any{&req.EmployeeID, &req.RequestType, &req.RequestScope, &req.Status, &req.Notes, &req.StartDate, &req.EndDate, &req.CreatedAt, &req.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	query = `
		SELECT id, date::text, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), hours, notes
		FROM shift_request_details
		WHERE shift_request_id::text = $1
		ORDER BY date, start_time
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	req.Details = make([]domain.ShiftRequestDetail, 0)
	for rows.Next() {
		detail := domain.ShiftRequestDetail{
			ShiftRequestID: id,
		}
		dst := []any{&detail.ID, &detail.Date, &detail.StartTime, &detail.EndTime, &detail.Hours, &detail.Notes}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		req.Details = append(req.Details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return req, nil
}

// GetAllShiftRequests lists request headers, optionally narrowed by status
// and/or employee. Details are not loaded here, the list view does not need
// them.
func (r *Repository) GetAllShiftRequests(status domain.ShiftRequestStatus, employeeID string) ([]*domain.ShiftRequest, error) {
	query := `
		SELECT id, employee_id, request_type, request_scope, status, notes, start_date::text, end_date::text, created_at, version
		FROM shift_requests
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR employee_id::text = $2)
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, string(status), employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.ShiftRequest, 0)
	for rows.Next() {
		req := &domain.ShiftRequest{}
		dst := []any{&req.ID, &req.EmployeeID, &req.RequestType, &req.RequestScope, &req.Status, &req.Notes, &req.StartDate, &req.EndDate, &req.CreatedAt, &req.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *Repository) UpdateShiftRequestStatus(req *domain.ShiftRequest) error {
	query := `
		UPDATE shift_requests
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, req.Status, req.ID, req.Version).Scan(&req.Version); err != nil {
		return err
	}

	return nil
}
