package shiftreq

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamato-estate/attendance/backend/internal/domain"
)

type fakeStore struct {
	headers    []*domain.ShiftRequest
	details    []*domain.ShiftRequestDetail
	headerErr  error
	detailsErr error
	deleteErr  error
	deletedIDs []string
	nextID     int
}

func (s *fakeStore) CreateShiftRequest(req *domain.ShiftRequest) error {
	if s.headerErr != nil {
		return s.headerErr
	}
	s.nextID++
	req.ID = fmt.Sprintf("req-%d", s.nextID)
	req.CreatedAt = time.Now()
	s.headers = append(s.headers, req)
	return nil
}

func (s *fakeStore) CreateShiftRequestDetails(details []*domain.ShiftRequestDetail) error {
	if s.detailsErr != nil {
		return s.detailsErr
	}
	s.details = append(s.details, details...)
	return nil
}

func (s *fakeStore) DeleteShiftRequest(id string) error {
	s.deletedIDs = append(s.deletedIDs, id)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i, h := range s.headers {
		if h.ID == id {
			s.headers = append(s.headers[:i], s.headers[i+1:]...)
			break
		}
	}
	return nil
}

func TestIsValidTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"end after start", "09:00", "17:00", true},
		{"end equals start", "09:00", "09:00", false},
		{"end before start", "17:00", "09:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTimeRange(tt.start, tt.end))
		})
	}
}

func TestHours(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  float64
	}{
		{"09:00", "12:00", 3},
		{"13:00", "17:00", 4},
		{"09:30", "10:15", 0.75},
		{"09:00:00", "09:50:00", 0.83},
	}

	for _, tt := range tests {
		got, err := Hours(tt.start, tt.end)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s-%s", tt.start, tt.end)
	}

	_, err := Hours("not a time", "17:00")
	assert.Error(t, err)
}

func TestValidateEntries(t *testing.T) {
	t.Run("disjoint windows on the same date pass", func(t *testing.T) {
		entries := []Entry{
			{Date: "2024-01-01", Start: "09:00", End: "12:00"},
			{Date: "2024-01-01", Start: "13:00", End: "17:00"},
		}
		assert.NoError(t, ValidateEntries(entries))
	})

	t.Run("touching boundary is not an overlap", func(t *testing.T) {
		entries := []Entry{
			{Date: "2024-01-01", Start: "09:00", End: "12:00"},
			{Date: "2024-01-01", Start: "12:00", End: "17:00"},
		}
		assert.NoError(t, ValidateEntries(entries))
	})

	t.Run("identical windows on different dates pass", func(t *testing.T) {
		entries := []Entry{
			{Date: "2024-01-01", Start: "09:00", End: "17:00"},
			{Date: "2024-01-02", Start: "09:00", End: "17:00"},
		}
		assert.NoError(t, ValidateEntries(entries))
	})

	t.Run("interior intersection is rejected and named", func(t *testing.T) {
		entries := []Entry{
			{Date: "2024-01-01", Start: "09:00", End: "13:00"},
			{Date: "2024-01-01", Start: "12:00", End: "17:00"},
		}
		err := ValidateEntries(entries)
		require.ErrorIs(t, err, ErrOverlappingEntries)
		assert.Contains(t, err.Error(), "2024-01-01")
		assert.Contains(t, err.Error(), "09:00-13:00")
		assert.Contains(t, err.Error(), "12:00-17:00")
	})

	t.Run("overlap check is symmetric", func(t *testing.T) {
		a := Entry{Date: "2024-01-01", Start: "09:00", End: "13:00"}
		b := Entry{Date: "2024-01-01", Start: "12:00", End: "17:00"}
		assert.Equal(t, overlaps(a, b), overlaps(b, a))
		assert.ErrorIs(t, ValidateEntries([]Entry{a, b}), ErrOverlappingEntries)
		assert.ErrorIs(t, ValidateEntries([]Entry{b, a}), ErrOverlappingEntries)
	})

	t.Run("reordering entries does not change the verdict", func(t *testing.T) {
		entries := []Entry{
			{Date: "2024-01-02", Start: "10:00", End: "11:00"},
			{Date: "2024-01-01", Start: "09:00", End: "12:00"},
			{Date: "2024-01-01", Start: "13:00", End: "17:00"},
			{Date: "2024-01-02", Start: "11:00", End: "12:00"},
		}
		assert.NoError(t, ValidateEntries(entries))

		reversed := make([]Entry, len(entries))
		for i, e := range entries {
			reversed[len(entries)-1-i] = e
		}
		assert.NoError(t, ValidateEntries(reversed))
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		entries := []Entry{{Date: "2024-01-01", Start: "17:00", End: "09:00"}}
		assert.ErrorIs(t, ValidateEntries(entries), ErrInvalidTimeRange)
	})

	t.Run("zero length range is rejected", func(t *testing.T) {
		entries := []Entry{{Date: "2024-01-01", Start: "09:00", End: "09:00"}}
		assert.ErrorIs(t, ValidateEntries(entries), ErrInvalidTimeRange)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateEntries([]Entry{{Start: "09:00", End: "17:00"}}), ErrInvalidEntry)
		assert.ErrorIs(t, ValidateEntries([]Entry{{Date: "2024-01-01", End: "17:00"}}), ErrInvalidEntry)
		assert.ErrorIs(t, ValidateEntries([]Entry{{Date: "2024-01-01", Start: "09:00"}}), ErrInvalidEntry)
	})

	t.Run("unparseable clock values are rejected", func(t *testing.T) {
		entries := []Entry{{Date: "2024-01-01", Start: "morning", End: "17:00"}}
		assert.ErrorIs(t, ValidateEntries(entries), ErrInvalidEntry)
	})
}

func TestSubmit(t *testing.T) {
	validEntries := []Entry{
		{Date: "2024-01-01", Start: "09:00", End: "12:00"},
		{Date: "2024-01-01", Start: "13:00", End: "17:00"},
	}

	t.Run("persists one header and all details", func(t *testing.T) {
		store := &fakeStore{}
		req, err := Submit(store, "E1", "prefers mornings", validEntries)
		require.NoError(t, err)

		require.Len(t, store.headers, 1)
		assert.Equal(t, "E1", req.EmployeeID)
		assert.Equal(t, domain.RequestTypeAvailability, req.RequestType)
		assert.Equal(t, domain.RequestStatusPending, req.Status)
		require.NotNil(t, req.Notes)
		assert.Equal(t, "prefers mornings", *req.Notes)
		assert.Nil(t, req.StartDate)
		assert.Nil(t, req.EndDate)

		require.Len(t, store.details, 2)
		assert.Equal(t, req.ID, store.details[0].ShiftRequestID)
		assert.Equal(t, 3.0, store.details[0].Hours)
		assert.Equal(t, 4.0, store.details[1].Hours)
	})

	t.Run("empty note is persisted as null", func(t *testing.T) {
		store := &fakeStore{}
		req, err := Submit(store, "E1", "", validEntries)
		require.NoError(t, err)
		assert.Nil(t, req.Notes)
	})

	t.Run("missing employee id", func(t *testing.T) {
		store := &fakeStore{}
		_, err := Submit(store, "", "", validEntries)
		assert.ErrorIs(t, err, ErrMissingFields)
		assert.Empty(t, store.headers)
	})

	t.Run("empty batch", func(t *testing.T) {
		store := &fakeStore{}
		_, err := Submit(store, "E1", "", nil)
		assert.ErrorIs(t, err, ErrMissingFields)
		assert.Empty(t, store.headers)
	})

	t.Run("overlapping batch persists nothing", func(t *testing.T) {
		store := &fakeStore{}
		_, err := Submit(store, "E1", "", []Entry{
			{Date: "2024-01-01", Start: "09:00", End: "13:00"},
			{Date: "2024-01-01", Start: "12:00", End: "17:00"},
		})
		assert.ErrorIs(t, err, ErrOverlappingEntries)
		assert.Empty(t, store.headers)
		assert.Empty(t, store.details)
	})

	t.Run("inverted range persists nothing", func(t *testing.T) {
		store := &fakeStore{}
		_, err := Submit(store, "E1", "", []Entry{
			{Date: "2024-01-01", Start: "17:00", End: "09:00"},
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
		assert.Empty(t, store.headers)
	})

	t.Run("header insert failure", func(t *testing.T) {
		store := &fakeStore{headerErr: errors.New("connection refused")}
		_, err := Submit(store, "E1", "", validEntries)
		assert.ErrorIs(t, err, ErrCreateHeader)
		assert.Empty(t, store.details)
		assert.Empty(t, store.deletedIDs)
	})

	t.Run("detail insert failure deletes the header", func(t *testing.T) {
		store := &fakeStore{detailsErr: errors.New("constraint violation")}
		_, err := Submit(store, "E1", "", validEntries)
		assert.ErrorIs(t, err, ErrCreateDetails)
		assert.Empty(t, store.headers, "compensation must remove the orphaned header")
		assert.Equal(t, []string{"req-1"}, store.deletedIDs)
	})

	t.Run("failed compensation still surfaces the detail error", func(t *testing.T) {
		store := &fakeStore{
			detailsErr: errors.New("constraint violation"),
			deleteErr:  errors.New("connection lost"),
		}
		_, err := Submit(store, "E1", "", validEntries)
		assert.ErrorIs(t, err, ErrCreateDetails)
	})
}
