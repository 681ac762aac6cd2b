package models

import "time"

// Attendance defines a single attendance row based on the 'attendance' table.
// (school_id, student_id, date) is unique: one row per student per day.
type Attendance struct {
	ID        int64            `json:"id" db:"id"`
	SchoolID  int64            `json:"schoolId" db:"school_id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	Date      time.Time        `json:"date" db:"date" example:"2024-06-01T00:00:00Z"`
	Status    AttendanceStatus `json:"status" db:"status" example:"PRESENT"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`

	Student *Student `json:"student,omitempty"` // Relation, populated when needed
}
