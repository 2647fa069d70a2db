package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/yamato-estate/attendance/backend/internal/domain"
	"github.com/yamato-estate/attendance/backend/internal/shiftreq"
)

// SubmitShiftRequest files an availability request: a batch of proposed
// working windows for one part-timer. Validation and the two-phase write
// live in the shiftreq package, this handler only maps its errors onto the
// wire format.
func (h *Handler) SubmitShiftRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string           `json:"employeeId"`
		Note       string           `json:"note"`
		Entries    []shiftreq.Entry `json:"entries"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := shiftreq.Submit(h.repository, req.EmployeeID, req.Note, req.Entries)
	if err != nil {
		switch {
		case errors.Is(err, shiftreq.ErrMissingFields),
			errors.Is(err, shiftreq.ErrInvalidEntry),
			errors.Is(err, shiftreq.ErrInvalidTimeRange),
			errors.Is(err, shiftreq.ErrOverlappingEntries):
			h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, shiftreq.ErrCreateHeader):
			h.logInternalServerError(r, err)
			h.errorResponse(w, r, http.StatusInternalServerError, shiftreq.ErrCreateHeader.Error())
		case errors.Is(err, shiftreq.ErrCreateDetails):
			h.logInternalServerError(r, err)
			h.errorResponse(w, r, http.StatusInternalServerError, shiftreq.ErrCreateDetails.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, struct {
		Success   bool   `json:"success"`
		RequestID string `json:"requestId"`
		Message   string `json:"message"`
	}{
		Success:   true,
		RequestID: created.ID,
		Message:   fmt.Sprintf("submitted %d available working day(s)", len(req.Entries)),
	})
}

func (h *Handler) GetAllShiftRequests(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	employeeID := r.URL.Query().Get("employeeId")

	if err := h.validate.Var(status, "omitempty,oneof=pending approved rejected"); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid status filter")
		return
	}

	requests, err := h.repository.GetAllShiftRequests(domain.ShiftRequestStatus(status), employeeID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift request list", requests)
}

func (h *Handler) GetShiftRequest(w http.ResponseWriter, r *http.Request) {
	req := r.Context().Value(ShiftRequestCtx).(*domain.ShiftRequest)
	h.successResponse(w, r, "shift request", req)
}

// ReviewShiftRequest moves a pending request to approved or rejected and
// mails the outcome to the employee.
func (h *Handler) ReviewShiftRequest(w http.ResponseWriter, r *http.Request) {
	req := r.Context().Value(ShiftRequestCtx).(*domain.ShiftRequest)

	var body struct {
		Status string `json:"status" validate:"required,oneof=approved rejected"`
	}

	if err := h.readJSON(r, &body); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Status != domain.RequestStatusPending {
		h.errorResponse(w, r, http.StatusConflict, "this request has already been reviewed")
		return
	}

	req.Status = domain.ShiftRequestStatus(body.Status)

	if err := h.repository.UpdateShiftRequestStatus(req); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "the request changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	employee, err := h.repository.GetEmployeeByID(req.EmployeeID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	dates := make([]string, 0, len(req.Details))
	for _, d := range req.Details {
		dates = append(dates, fmt.Sprintf("%s %s-%s", d.Date, d.StartTime, d.EndTime))
	}

	mailMessage := domain.MailMessage{
		Type: "shift_request_status",
		To:   employee.Email,
		Data: domain.ShiftRequestStatusMailData{
			EmployeeName: employee.Name,
			Status:       string(req.Status),
			RequestID:    req.ID,
			Dates:        strings.Join(dates, ", "),
		},
	}

	if err := h.queueMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift request reviewed", req)
}

func (h *Handler) DeleteShiftRequest(w http.ResponseWriter, r *http.Request) {
	req := r.Context().Value(ShiftRequestCtx).(*domain.ShiftRequest)

	// Details are removed by the FK cascade.
	if err := h.repository.DeleteShiftRequest(req.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift request deleted", nil)
}
