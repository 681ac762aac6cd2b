package dto

// RecordGradeRequest records a grade. Percentage and letter grade are always
// derived from the marks on the server; client-side values are not accepted.
type RecordGradeRequest struct {
	StudentID     int64   `json:"studentId" binding:"required,min=1"`
	Subject       string  `json:"subject" binding:"required,max=100" example:"Mathematics"`
	ExamType      string  `json:"examType" binding:"required" example:"MIDTERM"`
	AcademicYear  string  `json:"academicYear" binding:"required,academicyear" example:"2024-2025"`
	Term          string  `json:"term" binding:"required" example:"FIRST"`
	MarksObtained float64 `json:"marksObtained" binding:"min=0" example:"86"`
	TotalMarks    float64 `json:"totalMarks" binding:"required,gt=0" example:"100"`
}

// GradeAverageResponse is the per-student grade roll-up.
type GradeAverageResponse struct {
	StudentID         int64   `json:"studentId"`
	GradeCount        int     `json:"gradeCount"`
	AveragePercentage float64 `json:"averagePercentage"`
}
