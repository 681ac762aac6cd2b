package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id" example:"1"`                          // Unique identifier for the student record
	SchoolID     int64     `json:"schoolId" db:"school_id" example:"1"`             // Owning tenant
	UserID       int64     `json:"userId" db:"user_id" example:"5"`                 // ID of the backing user account
	ParentUserID *int64    `json:"parentUserId,omitempty" db:"parent_user_id"`      // Parent user (nullable, many students may share one parent)
	AdmissionNo  string    `json:"admissionNo" db:"admission_no" example:"ADM001"`  // Admission number (unique per school)
	ClassName    string    `json:"className" db:"class_name" example:"5"`           // Class the student is enrolled in
	Section      string    `json:"section" db:"section" example:"A"`                // Section within the class
	IsActive     bool      `json:"isActive" db:"is_active" example:"true"`          // Soft-delete flag
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User   *User `json:"user,omitempty"`   // Backing user account
	Parent *User `json:"parent,omitempty"` // Parent user account
}

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID         int64     `json:"id" db:"id"`
	SchoolID   int64     `json:"schoolId" db:"school_id"`
	UserID     int64     `json:"userId" db:"user_id"`
	EmployeeNo string    `json:"employeeNo" db:"employee_no" example:"EMP007"` // Employee number (unique per school)
	Specialty  string    `json:"specialty" db:"specialty" example:"Mathematics"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	User *User `json:"user,omitempty"` // Backing user account
}
