package dto

// DashboardResponse is the pre-shaped view model for the admin dashboard.
// Every field degrades to zero when the underlying tables are empty.
type DashboardResponse struct {
	ActiveStudents            int64   `json:"activeStudents"`
	ActiveTeachers            int64   `json:"activeTeachers"`
	TodayAttendancePercentage float64 `json:"todayAttendancePercentage"`
	FeesCollectedThisMonth    float64 `json:"feesCollectedThisMonth"`
	PendingComplaints         int64   `json:"pendingComplaints"`
}

// RevenuePoint is one month's collected total.
type RevenuePoint struct {
	Period string  `json:"period" example:"2024-06"`
	Total  float64 `json:"total"`
}

// RevenueReportResponse is the revenue-by-period report.
type RevenueReportResponse struct {
	From   string         `json:"from"`
	To     string         `json:"to"`
	Points []RevenuePoint `json:"points"`
}
