package dto

// AttendanceEntry is one (student, status) pair within a roster submission.
type AttendanceEntry struct {
	StudentID int64  `json:"studentId" binding:"required,min=1"`
	Status    string `json:"status" binding:"required" example:"PRESENT"`
}

// MarkAttendanceRequest submits the complete roster for a date. Existing rows
// for the date are replaced; students omitted from the payload lose their
// record for that date.
type MarkAttendanceRequest struct {
	Date    string            `json:"date" binding:"required" example:"2024-06-01"`
	Entries []AttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}

// AttendanceSummaryResponse is the per-student roll-up.
type AttendanceSummaryResponse struct {
	StudentID  int64   `json:"studentId"`
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Percentage float64 `json:"percentage" example:"100"`
}
