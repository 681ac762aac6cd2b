// Package services contains the business logic between controllers and
// repositories. Services depend on narrow store interfaces so they can be
// exercised without a database; the concrete repositories satisfy them.
package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/repositories"
	"github.com/edupulse/schoolerp/internal/db"
	"github.com/edupulse/schoolerp/internal/pkg/auth"
)

// txRunner runs a function inside a database transaction. *db.PostgresDB is
// the production implementation.
type txRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

type schoolStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, school *models.School) error
	GetByID(ctx context.Context, id int64) (*models.School, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*models.School, error)
	GetAll(ctx context.Context) ([]*models.School, error)
	Update(ctx context.Context, school *models.School) error
	Suspend(ctx context.Context, id int64) error
}

type userStore interface {
	Create(ctx context.Context, user *models.User) error
	CreateTx(ctx context.Context, tx pgx.Tx, user *models.User) error
	GetByID(ctx context.Context, schoolID, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, schoolID int64, email string) (*models.User, error)
	GetByEmailTx(ctx context.Context, tx pgx.Tx, schoolID int64, email string) (*models.User, error)
	EmailExists(ctx context.Context, schoolID int64, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, schoolID, id int64) error
	UpdateNameTx(ctx context.Context, tx pgx.Tx, schoolID, id int64, firstName, lastName string) error
	DeactivateTx(ctx context.Context, tx pgx.Tx, schoolID, id int64) error
}

type tokenStore interface {
	Store(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetUserID(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
	DeleteForUser(ctx context.Context, userID int64) error
}

type studentStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error
	GetByID(ctx context.Context, schoolID, id int64) (*models.Student, error)
	AdmissionNoExists(ctx context.Context, schoolID int64, admissionNo string) (bool, error)
	GetAll(ctx context.Context, schoolID int64, offset uint64, limit int) ([]*models.Student, error)
	Count(ctx context.Context, schoolID int64) (int64, error)
	CountActive(ctx context.Context, schoolID int64) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	SoftDeleteTx(ctx context.Context, tx pgx.Tx, schoolID, id int64) error
	GetAllForExport(ctx context.Context, schoolID int64) ([]repositories.StudentExport, error)
}

type teacherStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, teacher *models.Teacher) error
	GetByID(ctx context.Context, schoolID, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context, schoolID int64) ([]*models.Teacher, error)
	CountActive(ctx context.Context, schoolID int64) (int64, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	SoftDeleteTx(ctx context.Context, tx pgx.Tx, schoolID, id int64) error
}

type academicStore interface {
	CreateClass(ctx context.Context, class *models.Class) error
	GetClasses(ctx context.Context, schoolID int64) ([]*models.Class, error)
	ClassExists(ctx context.Context, schoolID int64, name, section string) (bool, error)
	CreateSubject(ctx context.Context, subject *models.Subject) error
	GetSubjects(ctx context.Context, schoolID int64) ([]*models.Subject, error)
	SubjectExists(ctx context.Context, schoolID int64, name string) (bool, error)
	CreateAcademicYear(ctx context.Context, year *models.AcademicYear) error
	GetAcademicYears(ctx context.Context, schoolID int64) ([]*models.AcademicYear, error)
	AcademicYearExists(ctx context.Context, schoolID int64, name string) (bool, error)
}

type attendanceStore interface {
	DeleteForDateTx(ctx context.Context, tx pgx.Tx, schoolID int64, date time.Time) error
	InsertTx(ctx context.Context, tx pgx.Tx, record *models.Attendance) error
	GetByDate(ctx context.Context, schoolID int64, date time.Time) ([]*models.Attendance, error)
	CountForStudent(ctx context.Context, schoolID, studentID int64) (total, present int, err error)
	CountForDate(ctx context.Context, schoolID int64, date time.Time) (total, present int, err error)
	GetForStudent(ctx context.Context, schoolID, studentID int64) ([]*models.Attendance, error)
}

type gradeStore interface {
	Create(ctx context.Context, grade *models.Grade) error
	GetForStudent(ctx context.Context, schoolID, studentID int64) ([]*models.Grade, error)
	AverageForStudent(ctx context.Context, schoolID, studentID int64) (count int, average float64, err error)
}

type feeStore interface {
	CreateStructure(ctx context.Context, fs *models.FeeStructure) error
	GetStructureByID(ctx context.Context, schoolID, id int64) (*models.FeeStructure, error)
	GetStructures(ctx context.Context, schoolID int64, className string) ([]*models.FeeStructure, error)
	CreatePayment(ctx context.Context, p *models.FeePayment) error
	GetPaymentsForStudent(ctx context.Context, schoolID, studentID int64) ([]*models.FeePayment, error)
	TotalPaidForStudent(ctx context.Context, schoolID, studentID int64) (float64, error)
	TotalApplicableForClass(ctx context.Context, schoolID int64, className, academicYear string) (float64, error)
	SumPaymentsBetween(ctx context.Context, schoolID int64, from, to time.Time) (float64, error)
	RevenueByMonth(ctx context.Context, schoolID int64, from, to time.Time) (map[string]float64, error)
}

type notificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	GetUnsent(ctx context.Context, limit int) ([]*models.Notification, error)
	MarkSent(ctx context.Context, id int64) error
	GetForTarget(ctx context.Context, schoolID int64, role models.RoleType, userID int64) ([]*models.Notification, error)
}

type complaintStore interface {
	Create(ctx context.Context, c *models.Complaint) error
	GetByID(ctx context.Context, schoolID, id int64) (*models.Complaint, error)
	GetAll(ctx context.Context, schoolID int64) ([]*models.Complaint, error)
	CountOpen(ctx context.Context, schoolID int64) (int64, error)
	UpdateStatus(ctx context.Context, c *models.Complaint) error
}

type billingStore interface {
	Create(ctx context.Context, b *models.BillingRecord) error
	GetByID(ctx context.Context, id int64) (*models.BillingRecord, error)
	GetForSchool(ctx context.Context, schoolID int64) ([]*models.BillingRecord, error)
	GetAll(ctx context.Context) ([]*models.BillingRecord, error)
	UpdateStatus(ctx context.Context, id int64, status models.BillingStatus, paidAt *time.Time) error
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

// Services is a container for all service instances
type Services struct {
	AuthService         AuthService
	SchoolService       SchoolService
	StudentService      StudentService
	TeacherService      TeacherService
	AcademicService     AcademicService
	AttendanceService   AttendanceService
	GradeService        GradeService
	FeeService          FeeService
	NotificationService NotificationService
	ComplaintService    ComplaintService
	BillingService      BillingService
	DashboardService    DashboardService
}

// NewServices wires all services to the repositories and shared
// infrastructure.
func NewServices(database *db.PostgresDB, repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	academicService := NewAcademicService(repos.AcademicRepository)

	return &Services{
		AuthService: NewAuthService(database, repos.SchoolRepository, repos.UserRepository,
			repos.TokenRepository, jwtService, academicService),
		SchoolService:  NewSchoolService(repos.SchoolRepository),
		StudentService: NewStudentService(database, repos.StudentRepository, repos.UserRepository),
		TeacherService: NewTeacherService(database, repos.TeacherRepository, repos.UserRepository),
		AcademicService: academicService,
		AttendanceService: NewAttendanceService(database, repos.AttendanceRepository, repos.StudentRepository),
		GradeService:      NewGradeService(repos.GradeRepository, repos.StudentRepository),
		FeeService:        NewFeeService(repos.FeeRepository, repos.StudentRepository),
		NotificationService: NewNotificationService(repos.NotificationRepository),
		ComplaintService:    NewComplaintService(repos.ComplaintRepository),
		BillingService:      NewBillingService(repos.BillingRepository, repos.SchoolRepository),
		DashboardService: NewDashboardService(repos.StudentRepository, repos.TeacherRepository,
			repos.AttendanceRepository, repos.FeeRepository, repos.ComplaintRepository),
	}
}
