package services

import (
	"context"
	"sort"
	"time"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
)

// DashboardService computes pre-shaped reporting views. Every aggregate
// degrades to zero on empty data instead of failing.
type DashboardService interface {
	GetDashboard(ctx context.Context, schoolID int64) (*dto.DashboardResponse, error)
	GetRevenueReport(ctx context.Context, schoolID int64, from, to string) (*dto.RevenueReportResponse, error)
}

type dashboardServiceImpl struct {
	studentRepo    studentStore
	teacherRepo    teacherStore
	attendanceRepo attendanceStore
	feeRepo        feeStore
	complaintRepo  complaintStore
	now            func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(studentRepo studentStore, teacherRepo teacherStore,
	attendanceRepo attendanceStore, feeRepo feeStore, complaintRepo complaintStore) DashboardService {
	return &dashboardServiceImpl{
		studentRepo:    studentRepo,
		teacherRepo:    teacherRepo,
		attendanceRepo: attendanceRepo,
		feeRepo:        feeRepo,
		complaintRepo:  complaintRepo,
		now:            time.Now,
	}
}

// GetDashboard assembles the admin dashboard counters for today and the
// current month.
func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, schoolID int64) (*dto.DashboardResponse, error) {
	activeStudents, err := s.studentRepo.CountActive(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	activeTeachers, err := s.teacherRepo.CountActive(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	total, present, err := s.attendanceRepo.CountForDate(ctx, schoolID, today)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	collected, err := s.feeRepo.SumPaymentsBetween(ctx, schoolID, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}

	pendingComplaints, err := s.complaintRepo.CountOpen(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		ActiveStudents:            activeStudents,
		ActiveTeachers:            activeTeachers,
		TodayAttendancePercentage: AttendancePercentage(present, total),
		FeesCollectedThisMonth:    collected,
		PendingComplaints:         pendingComplaints,
	}, nil
}

// GetRevenueReport groups collected fees by month in [from, to]. Dates are
// "YYYY-MM-DD"; an empty from defaults to twelve months back and an empty to
// defaults to now.
func (s *dashboardServiceImpl) GetRevenueReport(ctx context.Context, schoolID int64, fromStr, toStr string) (*dto.RevenueReportResponse, error) {
	now := s.now()

	from := now.AddDate(-1, 0, 0)
	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, apperrors.NewValidationError("from", "from must be in YYYY-MM-DD format")
		}
		from = parsed
	}

	to := now
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, apperrors.NewValidationError("to", "to must be in YYYY-MM-DD format")
		}
		// Inclusive end date.
		to = parsed.AddDate(0, 0, 1)
	}

	if !from.Before(to) {
		return nil, apperrors.NewValidationError("from", "from must be before to")
	}

	totals, err := s.feeRepo.RevenueByMonth(ctx, schoolID, from, to)
	if err != nil {
		return nil, err
	}

	periods := make([]string, 0, len(totals))
	for period := range totals {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	points := make([]dto.RevenuePoint, 0, len(periods))
	for _, period := range periods {
		points = append(points, dto.RevenuePoint{Period: period, Total: totals[period]})
	}

	return &dto.RevenueReportResponse{
		From:   from.Format("2006-01-02"),
		To:     to.Format("2006-01-02"),
		Points: points,
	}, nil
}
