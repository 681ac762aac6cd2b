package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
)

// A zero or negative school scope must never reach the database: reads come
// back empty and scoped lookups report not-found. Every repository is
// constructed over a nil pool, so any query attempt would panic and fail the
// test.

var badScopes = []int64{0, -1}

func TestStudentRepositoryFailsClosedWithoutScope(t *testing.T) {
	t.Parallel()

	repo := NewStudentRepository(nil)
	ctx := context.Background()

	for _, schoolID := range badScopes {
		_, err := repo.GetByID(ctx, schoolID, 1)
		require.ErrorIs(t, err, apperrors.ErrStudentNotFound)

		students, err := repo.GetAll(ctx, schoolID, 0, 10)
		require.NoError(t, err)
		require.Empty(t, students)

		count, err := repo.Count(ctx, schoolID)
		require.NoError(t, err)
		require.Zero(t, count)

		active, err := repo.CountActive(ctx, schoolID)
		require.NoError(t, err)
		require.Zero(t, active)

		exists, err := repo.AdmissionNoExists(ctx, schoolID, "ADM-001")
		require.NoError(t, err)
		require.False(t, exists)

		require.ErrorIs(t, repo.SoftDeleteTx(ctx, nil, schoolID, 1), apperrors.ErrStudentNotFound)

		exports, err := repo.GetAllForExport(ctx, schoolID)
		require.NoError(t, err)
		require.Empty(t, exports)
	}
}

func TestTeacherRepositoryFailsClosedWithoutScope(t *testing.T) {
	t.Parallel()

	repo := NewTeacherRepository(nil)
	ctx := context.Background()

	for _, schoolID := range badScopes {
		_, err := repo.GetByID(ctx, schoolID, 1)
		require.ErrorIs(t, err, apperrors.ErrResourceNotFound)

		teachers, err := repo.GetAll(ctx, schoolID)
		require.NoError(t, err)
		require.Empty(t, teachers)

		active, err := repo.CountActive(ctx, schoolID)
		require.NoError(t, err)
		require.Zero(t, active)

		require.ErrorIs(t, repo.SoftDeleteTx(ctx, nil, schoolID, 1), apperrors.ErrResourceNotFound)
	}
}

func TestUserRepositoryFailsClosedWithoutScope(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(nil)
	ctx := context.Background()

	for _, schoolID := range badScopes {
		_, err := repo.GetByID(ctx, schoolID, 1)
		require.ErrorIs(t, err, apperrors.ErrUserNotFound)

		_, err = repo.GetByEmail(ctx, schoolID, "admin@greenwood.edu")
		require.ErrorIs(t, err, apperrors.ErrUserNotFound)

		_, err = repo.GetByEmailTx(ctx, nil, schoolID, "admin@greenwood.edu")
		require.ErrorIs(t, err, apperrors.ErrUserNotFound)

		exists, err := repo.EmailExists(ctx, schoolID, "admin@greenwood.edu")
		require.NoError(t, err)
		require.False(t, exists)

		require.ErrorIs(t, repo.UpdateLastLogin(ctx, schoolID, 1), apperrors.ErrUserNotFound)
		require.ErrorIs(t, repo.UpdateNameTx(ctx, nil, schoolID, 1, "Asha", "Rao"), apperrors.ErrUserNotFound)
		require.ErrorIs(t, repo.DeactivateTx(ctx, nil, schoolID, 1), apperrors.ErrUserNotFound)
	}
}

func TestAcademicRepositoryFailsClosedWithoutScope(t *testing.T) {
	t.Parallel()

	repo := NewAcademicRepository(nil)
	ctx := context.Background()

	for _, schoolID := range badScopes {
		classes, err := repo.GetClasses(ctx, schoolID)
		require.NoError(t, err)
		require.Empty(t, classes)

		exists, err := repo.ClassExists(ctx, schoolID, "5", "A")
		require.NoError(t, err)
		require.False(t, exists)

		subjects, err := repo.GetSubjects(ctx, schoolID)
		require.NoError(t, err)
		require.Empty(t, subjects)

		exists, err = repo.SubjectExists(ctx, schoolID, "Mathematics")
		require.NoError(t, err)
		require.False(t, exists)

		years, err := repo.GetAcademicYears(ctx, schoolID)
		require.NoError(t, err)
		require.Empty(t, years)

		exists, err = repo.AcademicYearExists(ctx, schoolID, "2024-2025")
		require.NoError(t, err)
		require.False(t, exists)
	}
}

func TestAttendanceRepositoryFailsClosedWithoutScope(t *testing.T) {
	t.Parallel()

	repo := NewAttendanceRepository(nil)
	ctx := context.Background()
	day := time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC)

	for _, schoolID := range badScopes {
		require.ErrorIs(t, repo.DeleteForDateTx(ctx, nil, schoolID, day), apperrors.ErrResourceNotFound)

		roster, err := repo.GetByDate(ctx, schoolID, day)
		require.NoError(t, err)
		require.Empty(t, roster)

		total, present, err := repo.CountForStudent(ctx, schoolID, 1)
		require.NoError(t, err)
		require.Zero(t, total)
		require.Zero(t, present)

		total, present, err = repo.CountForDate(ctx, schoolID, day)
		require.NoError(t, err)
		require.Zero(t, total)
		require.Zero(t, present)

		history, err := repo.GetForStudent(ctx, schoolID, 1)
		require.NoError(t, err)
		require.Empty(t, history)
	}
}

func TestGradeRepositoryFailsClosedWithoutScope(t *testing.T) {
	t.Parallel()

	repo := NewGradeRepository(nil)
	ctx := context.Background()

	for _, schoolID := range badScopes {
		grades, err := repo.GetForStudent(ctx, schoolID, 1)
		require.NoError(t, err)
		require.Empty(t, grades)

		count, average, err := repo.AverageForStudent(ctx, schoolID, 1)
		require.NoError(t, err)
		require.Zero(t, count)
		require.Zero(t, average)
	}
}

func TestFeeRepositoryFailsClosedWithoutScope(t *testing.T) {
	t.Parallel()

	repo := NewFeeRepository(nil)
	ctx := context.Background()
	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	for _, schoolID := range badScopes {
		_, err := repo.GetStructureByID(ctx, schoolID, 1)
		require.ErrorIs(t, err, apperrors.ErrFeeStructureNotFound)

		structures, err := repo.GetStructures(ctx, schoolID, "5")
		require.NoError(t, err)
		require.Empty(t, structures)

		payments, err := repo.GetPaymentsForStudent(ctx, schoolID, 1)
		require.NoError(t, err)
		require.Empty(t, payments)

		paid, err := repo.TotalPaidForStudent(ctx, schoolID, 1)
		require.NoError(t, err)
		require.Zero(t, paid)

		applicable, err := repo.TotalApplicableForClass(ctx, schoolID, "5", "2024-2025")
		require.NoError(t, err)
		require.Zero(t, applicable)

		collected, err := repo.SumPaymentsBetween(ctx, schoolID, from, to)
		require.NoError(t, err)
		require.Zero(t, collected)

		revenue, err := repo.RevenueByMonth(ctx, schoolID, from, to)
		require.NoError(t, err)
		require.Empty(t, revenue)
	}
}

func TestNotificationRepositoryFailsClosedWithoutScope(t *testing.T) {
	t.Parallel()

	repo := NewNotificationRepository(nil)
	ctx := context.Background()

	for _, schoolID := range badScopes {
		notifications, err := repo.GetForTarget(ctx, schoolID, models.RoleParent, 1)
		require.NoError(t, err)
		require.Empty(t, notifications)
	}
}

func TestComplaintRepositoryFailsClosedWithoutScope(t *testing.T) {
	t.Parallel()

	repo := NewComplaintRepository(nil)
	ctx := context.Background()

	for _, schoolID := range badScopes {
		_, err := repo.GetByID(ctx, schoolID, 1)
		require.ErrorIs(t, err, apperrors.ErrComplaintNotFound)

		complaints, err := repo.GetAll(ctx, schoolID)
		require.NoError(t, err)
		require.Empty(t, complaints)

		open, err := repo.CountOpen(ctx, schoolID)
		require.NoError(t, err)
		require.Zero(t, open)
	}
}
