package models

import "time"

// Grade defines a recorded grade based on the 'grades' table.
// Percentage and letter are derived from marks at write time.
type Grade struct {
	ID            int64     `json:"id" db:"id"`
	SchoolID      int64     `json:"schoolId" db:"school_id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	Subject       string    `json:"subject" db:"subject" example:"Mathematics"`
	ExamType      ExamType  `json:"examType" db:"exam_type" example:"MIDTERM"`
	AcademicYear  string    `json:"academicYear" db:"academic_year" example:"2024-2025"`
	Term          Term      `json:"term" db:"term" example:"FIRST"`
	MarksObtained float64   `json:"marksObtained" db:"marks_obtained" example:"86"`
	TotalMarks    float64   `json:"totalMarks" db:"total_marks" example:"100"`
	Percentage    float64   `json:"percentage" db:"percentage" example:"86"`
	Letter        string    `json:"letter" db:"letter" example:"A"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
