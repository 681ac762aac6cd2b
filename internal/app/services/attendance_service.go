package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
)

const attendanceDateLayout = "2006-01-02"

// AttendanceService defines attendance marking and reporting operations
type AttendanceService interface {
	MarkAttendance(ctx context.Context, schoolID int64, req *dto.MarkAttendanceRequest) error
	GetByDate(ctx context.Context, schoolID int64, date string) ([]*models.Attendance, error)
	GetStudentSummary(ctx context.Context, schoolID, studentID int64) (*dto.AttendanceSummaryResponse, error)
	GetStudentHistory(ctx context.Context, schoolID, studentID int64) ([]*models.Attendance, error)
}

type attendanceServiceImpl struct {
	tx             txRunner
	attendanceRepo attendanceStore
	studentRepo    studentStore
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(tx txRunner, attendanceRepo attendanceStore, studentRepo studentStore) AttendanceService {
	return &attendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
	}
}

// MarkAttendance replaces the whole roster for a date: existing rows for the
// date are deleted and the submitted entries inserted, all in one
// transaction. A failed batch leaves the previous roster intact.
func (s *attendanceServiceImpl) MarkAttendance(ctx context.Context, schoolID int64, req *dto.MarkAttendanceRequest) error {
	date, err := time.Parse(attendanceDateLayout, req.Date)
	if err != nil {
		return apperrors.NewValidationError("date", "date must be in YYYY-MM-DD format")
	}

	entries := make([]models.Attendance, 0, len(req.Entries))
	seen := make(map[int64]bool, len(req.Entries))
	for _, entry := range req.Entries {
		status := models.AttendanceStatus(entry.Status)
		if !status.Valid() {
			return apperrors.NewValidationError("status", "unknown attendance status: "+entry.Status)
		}
		if seen[entry.StudentID] {
			return apperrors.NewValidationError("studentId", "duplicate student in roster")
		}
		seen[entry.StudentID] = true

		entries = append(entries, models.Attendance{
			SchoolID:  schoolID,
			StudentID: entry.StudentID,
			Date:      date,
			Status:    status,
		})
	}

	for _, entry := range entries {
		if _, err := s.studentRepo.GetByID(ctx, schoolID, entry.StudentID); err != nil {
			return err
		}
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.attendanceRepo.DeleteForDateTx(ctx, tx, schoolID, date); err != nil {
			return err
		}
		for i := range entries {
			if err := s.attendanceRepo.InsertTx(ctx, tx, &entries[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("schoolId", schoolID).Str("date", req.Date).
		Int("entries", len(entries)).Msg("Attendance roster recorded")

	return nil
}

// GetByDate returns the roster recorded for a date.
func (s *attendanceServiceImpl) GetByDate(ctx context.Context, schoolID int64, dateStr string) ([]*models.Attendance, error) {
	date, err := time.Parse(attendanceDateLayout, dateStr)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "date must be in YYYY-MM-DD format")
	}

	return s.attendanceRepo.GetByDate(ctx, schoolID, date)
}

// GetStudentSummary returns the per-student attendance roll-up. A student
// with no recorded days gets 0 percent, not an error.
func (s *attendanceServiceImpl) GetStudentSummary(ctx context.Context, schoolID, studentID int64) (*dto.AttendanceSummaryResponse, error) {
	if _, err := s.studentRepo.GetByID(ctx, schoolID, studentID); err != nil {
		return nil, err
	}

	total, present, err := s.attendanceRepo.CountForStudent(ctx, schoolID, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.AttendanceSummaryResponse{
		StudentID:  studentID,
		Total:      total,
		Present:    present,
		Percentage: AttendancePercentage(present, total),
	}, nil
}

// GetStudentHistory lists a student's attendance rows, most recent first.
func (s *attendanceServiceImpl) GetStudentHistory(ctx context.Context, schoolID, studentID int64) ([]*models.Attendance, error) {
	if _, err := s.studentRepo.GetByID(ctx, schoolID, studentID); err != nil {
		return nil, err
	}

	return s.attendanceRepo.GetForStudent(ctx, schoolID, studentID)
}

// AttendancePercentage computes present/total as a percentage, returning 0
// when there are no recorded days.
func AttendancePercentage(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(present) / float64(total) * 100
}
