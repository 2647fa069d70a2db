package domain

import "time"

type AttendanceRecord struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employeeID"`
	Date             string    `json:"date"`
	ClockInTime      string    `json:"clockInTime"`
	ClockOutTime     *string   `json:"clockOutTime"`
	TotalHours       *float64  `json:"totalHours"`
	ClockInLocation  *string   `json:"clockInLocation"`
	ClockOutLocation *string   `json:"clockOutLocation"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"createdAt"`
	Version          int32     `json:"-"`
}
