package models

import "time"

// Class defines a class/section pair based on the 'classes' table.
// (school_id, name, section) is unique.
type Class struct {
	ID        int64     `json:"id" db:"id"`
	SchoolID  int64     `json:"schoolId" db:"school_id"`
	Name      string    `json:"name" db:"name" example:"5"`
	Section   string    `json:"section" db:"section" example:"A"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Subject defines a taught subject based on the 'subjects' table.
type Subject struct {
	ID        int64     `json:"id" db:"id"`
	SchoolID  int64     `json:"schoolId" db:"school_id"`
	Name      string    `json:"name" db:"name" example:"Mathematics"`
	Code      string    `json:"code" db:"code" example:"MATH"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AcademicYear defines an academic year based on the 'academic_years' table.
type AcademicYear struct {
	ID        int64     `json:"id" db:"id"`
	SchoolID  int64     `json:"schoolId" db:"school_id"`
	Name      string    `json:"name" db:"name" example:"2024-2025"` // Unique per school
	IsCurrent bool      `json:"isCurrent" db:"is_current"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
