package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
)

func TestMarkAttendanceReplacesRoster(t *testing.T) {
	t.Parallel()

	var deleted bool
	var inserted []models.Attendance

	attendanceRepo := &mockAttendanceStore{
		deleteForDateTxFn: func(ctx context.Context, tx pgx.Tx, schoolID int64, date time.Time) error {
			deleted = true
			require.Empty(t, inserted, "delete must run before any insert")
			return nil
		},
		insertTxFn: func(ctx context.Context, tx pgx.Tx, record *models.Attendance) error {
			require.True(t, deleted, "insert must not run before the delete")
			inserted = append(inserted, *record)
			return nil
		},
	}

	svc := NewAttendanceService(&mockTxRunner{}, attendanceRepo, &mockStudentStore{})

	err := svc.MarkAttendance(context.Background(), 1, &dto.MarkAttendanceRequest{
		Date: "2024-06-01",
		Entries: []dto.AttendanceEntry{
			{StudentID: 10, Status: "PRESENT"},
			{StudentID: 11, Status: "ABSENT"},
			{StudentID: 12, Status: "LATE"},
		},
	})
	require.NoError(t, err)
	require.Len(t, inserted, 3)

	for _, record := range inserted {
		require.Equal(t, int64(1), record.SchoolID)
		require.Equal(t, "2024-06-01", record.Date.Format("2006-01-02"))
	}
	require.Equal(t, models.AttendanceAbsent, inserted[1].Status)
}

func TestMarkAttendanceRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc := NewAttendanceService(&mockTxRunner{}, &mockAttendanceStore{}, &mockStudentStore{})
	ctx := context.Background()

	err := svc.MarkAttendance(ctx, 1, &dto.MarkAttendanceRequest{
		Date:    "01-06-2024",
		Entries: []dto.AttendanceEntry{{StudentID: 10, Status: "PRESENT"}},
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.MarkAttendance(ctx, 1, &dto.MarkAttendanceRequest{
		Date:    "2024-06-01",
		Entries: []dto.AttendanceEntry{{StudentID: 10, Status: "SLEEPING"}},
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.MarkAttendance(ctx, 1, &dto.MarkAttendanceRequest{
		Date: "2024-06-01",
		Entries: []dto.AttendanceEntry{
			{StudentID: 10, Status: "PRESENT"},
			{StudentID: 10, Status: "ABSENT"},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestMarkAttendanceUnknownStudent(t *testing.T) {
	t.Parallel()

	studentRepo := &mockStudentStore{
		getByIDFn: func(ctx context.Context, schoolID, id int64) (*models.Student, error) {
			return nil, apperrors.ErrStudentNotFound
		},
	}

	svc := NewAttendanceService(&mockTxRunner{}, &mockAttendanceStore{}, studentRepo)

	err := svc.MarkAttendance(context.Background(), 1, &dto.MarkAttendanceRequest{
		Date:    "2024-06-01",
		Entries: []dto.AttendanceEntry{{StudentID: 99, Status: "PRESENT"}},
	})
	require.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetStudentSummary(t *testing.T) {
	t.Parallel()

	attendanceRepo := &mockAttendanceStore{
		countForStudentFn: func(ctx context.Context, schoolID, studentID int64) (int, int, error) {
			return 20, 18, nil
		},
	}

	svc := NewAttendanceService(&mockTxRunner{}, attendanceRepo, &mockStudentStore{})

	summary, err := svc.GetStudentSummary(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, 20, summary.Total)
	require.Equal(t, 18, summary.Present)
	require.InDelta(t, 90.0, summary.Percentage, 0.001)
}

func TestGetStudentSummaryNoRecords(t *testing.T) {
	t.Parallel()

	svc := NewAttendanceService(&mockTxRunner{}, &mockAttendanceStore{}, &mockStudentStore{})

	summary, err := svc.GetStudentSummary(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Zero(t, summary.Total)
	require.Zero(t, summary.Percentage)
}

func TestAttendancePercentage(t *testing.T) {
	t.Parallel()

	require.Zero(t, AttendancePercentage(0, 0))
	require.InDelta(t, 100.0, AttendancePercentage(5, 5), 0.001)
	require.InDelta(t, 50.0, AttendancePercentage(1, 2), 0.001)
}
