package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/yamato-estate/attendance/backend/internal/domain"
	"github.com/yamato-estate/attendance/backend/internal/shiftreq"
)

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string  `json:"employeeId" validate:"required"`
		Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
		Time       string  `json:"time" validate:"required,datetime=15:04"`
		Location   *string `json:"location"`
		Notes      *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := h.repository.GetEmployeeByID(req.EmployeeID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusNotFound, "employee not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// Only one open record per employee/day.
	if _, err := h.repository.GetOpenAttendanceRecord(req.EmployeeID, req.Date); err == nil {
		h.errorResponse(w, r, http.StatusConflict, "already clocked in")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		h.internalServerError(w, r, err)
		return
	}

	record := &domain.AttendanceRecord{
		EmployeeID:      req.EmployeeID,
		Date:            req.Date,
		ClockInTime:     req.Time,
		ClockInLocation: req.Location,
		Notes:           req.Notes,
	}

	if err := h.repository.CreateAttendanceRecord(record); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "clocked in", record)
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string  `json:"employeeId" validate:"required"`
		Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
		Time       string  `json:"time" validate:"required,datetime=15:04"`
		Location   *string `json:"location"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	record, err := h.repository.GetOpenAttendanceRecord(req.EmployeeID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusNotFound, "no open attendance record for this employee and date")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if !shiftreq.IsValidTimeRange(record.ClockInTime, req.Time) {
		h.errorResponse(w, r, http.StatusBadRequest, "clock-out time must be after the clock-in time")
		return
	}

	hours, err := shiftreq.Hours(record.ClockInTime, req.Time)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	record.ClockOutTime = &req.Time
	record.ClockOutLocation = req.Location
	record.TotalHours = &hours

	if err := h.repository.CloseAttendanceRecord(record); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "the record changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "clocked out", record)
}

func (h *Handler) GetAttendanceRecords(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if err := h.validate.Var(from, "omitempty,datetime=2006-01-02"); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid from filter")
		return
	}
	if err := h.validate.Var(to, "omitempty,datetime=2006-01-02"); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid to filter")
		return
	}

	records, err := h.repository.GetAttendanceRecords(employeeID, from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "attendance records", records)
}
