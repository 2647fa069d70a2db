package domain

import "time"

type ShiftRequestType string

const (
	RequestTypeShift        ShiftRequestType = "shift_request"
	RequestTypeAvailability ShiftRequestType = "availability"
	RequestTypeTimeOff      ShiftRequestType = "time_off"
)

type ShiftRequestStatus string

const (
	RequestStatusPending  ShiftRequestStatus = "pending"
	RequestStatusApproved ShiftRequestStatus = "approved"
	RequestStatusRejected ShiftRequestStatus = "rejected"
)

type ShiftRequest struct {
	ID           string               `json:"id"`
	EmployeeID   string               `json:"employeeID"`
	RequestType  ShiftRequestType     `json:"requestType"`
	RequestScope string               `json:"requestScope"`
	Status       ShiftRequestStatus   `json:"status"`
	Notes        *string              `json:"notes"`
	StartDate    *string              `json:"startDate"` // unused for availability requests
	EndDate      *string              `json:"endDate"`
	Details      []ShiftRequestDetail `json:"details,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	Version      int32                `json:"-"`
}

type ShiftRequestDetail struct {
	ID             string  `json:"id"`
	ShiftRequestID string  `json:"shiftRequestID"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Hours          float64 `json:"hours"`
	Notes          *string `json:"notes"`
}
