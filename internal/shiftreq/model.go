package shiftreq

import (
	"errors"

	"github.com/yamato-estate/attendance/backend/internal/domain"
)

// Entry is one proposed working-availability window submitted by an employee.
// Times are zero-padded 24-hour clock values ("HH:MM" or "HH:MM:SS").
type Entry struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Store is the persistence collaborator for availability requests. The
// repository implements it against PostgreSQL, tests implement it in memory.
type Store interface {
	CreateShiftRequest(req *domain.ShiftRequest) error
	CreateShiftRequestDetails(details []*domain.ShiftRequestDetail) error
	DeleteShiftRequest(id string) error
}

var (
	ErrMissingFields      = errors.New("employee id and at least one entry are required")
	ErrInvalidEntry       = errors.New("each entry requires a date, start time and end time")
	ErrInvalidTimeRange   = errors.New("end time must be after start time")
	ErrOverlappingEntries = errors.New("time ranges overlap")
	ErrCreateHeader       = errors.New("could not create the request header")
	ErrCreateDetails      = errors.New("could not create the request details")
)
