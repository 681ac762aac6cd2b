package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx so repository methods
// can run inside or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories is a container for all repository instances
type Repositories struct {
	SchoolRepository       *SchoolRepository
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	StudentRepository      *StudentRepository
	TeacherRepository      *TeacherRepository
	AcademicRepository     *AcademicRepository
	AttendanceRepository   *AttendanceRepository
	GradeRepository        *GradeRepository
	FeeRepository          *FeeRepository
	NotificationRepository *NotificationRepository
	ComplaintRepository    *ComplaintRepository
	BillingRepository      *BillingRepository
}

// NewRepositories creates all repositories backed by the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SchoolRepository:       NewSchoolRepository(db),
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		StudentRepository:      NewStudentRepository(db),
		TeacherRepository:      NewTeacherRepository(db),
		AcademicRepository:     NewAcademicRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		GradeRepository:        NewGradeRepository(db),
		FeeRepository:          NewFeeRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		ComplaintRepository:    NewComplaintRepository(db),
		BillingRepository:      NewBillingRepository(db),
	}
}
