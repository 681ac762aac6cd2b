package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/repositories"
	"github.com/edupulse/schoolerp/internal/db"
)

// Function-field mocks for the store interfaces. Unset fields return zero
// values so each test only wires what it asserts on.

type mockTxRunner struct {
	err error
}

func (m *mockTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx, nil)
}

type mockSchoolStore struct {
	createTxFn       func(ctx context.Context, tx pgx.Tx, school *models.School) error
	getByIDFn        func(ctx context.Context, id int64) (*models.School, error)
	getBySubdomainFn func(ctx context.Context, subdomain string) (*models.School, error)
	getAllFn         func(ctx context.Context) ([]*models.School, error)
	updateFn         func(ctx context.Context, school *models.School) error
	suspendFn        func(ctx context.Context, id int64) error
}

func (m *mockSchoolStore) CreateTx(ctx context.Context, tx pgx.Tx, school *models.School) error {
	if m.createTxFn != nil {
		return m.createTxFn(ctx, tx, school)
	}
	return nil
}

func (m *mockSchoolStore) GetByID(ctx context.Context, id int64) (*models.School, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSchoolStore) GetBySubdomain(ctx context.Context, subdomain string) (*models.School, error) {
	if m.getBySubdomainFn != nil {
		return m.getBySubdomainFn(ctx, subdomain)
	}
	return nil, nil
}

func (m *mockSchoolStore) GetAll(ctx context.Context) ([]*models.School, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockSchoolStore) Update(ctx context.Context, school *models.School) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, school)
	}
	return nil
}

func (m *mockSchoolStore) Suspend(ctx context.Context, id int64) error {
	if m.suspendFn != nil {
		return m.suspendFn(ctx, id)
	}
	return nil
}

type mockUserStore struct {
	createFn          func(ctx context.Context, user *models.User) error
	createTxFn        func(ctx context.Context, tx pgx.Tx, user *models.User) error
	getByIDFn         func(ctx context.Context, schoolID, id int64) (*models.User, error)
	getByEmailFn      func(ctx context.Context, schoolID int64, email string) (*models.User, error)
	getByEmailTxFn    func(ctx context.Context, tx pgx.Tx, schoolID int64, email string) (*models.User, error)
	emailExistsFn     func(ctx context.Context, schoolID int64, email string) (bool, error)
	updateLastLoginFn func(ctx context.Context, schoolID, id int64) error
	updateNameTxFn    func(ctx context.Context, tx pgx.Tx, schoolID, id int64, firstName, lastName string) error
	deactivateTxFn    func(ctx context.Context, tx pgx.Tx, schoolID, id int64) error
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) CreateTx(ctx context.Context, tx pgx.Tx, user *models.User) error {
	if m.createTxFn != nil {
		return m.createTxFn(ctx, tx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, schoolID, id int64) (*models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, schoolID, id)
	}
	return &models.User{ID: id, SchoolID: schoolID, IsActive: true}, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, schoolID int64, email string) (*models.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, schoolID, email)
	}
	return nil, nil
}

func (m *mockUserStore) GetByEmailTx(ctx context.Context, tx pgx.Tx, schoolID int64, email string) (*models.User, error) {
	if m.getByEmailTxFn != nil {
		return m.getByEmailTxFn(ctx, tx, schoolID, email)
	}
	return nil, nil
}

func (m *mockUserStore) EmailExists(ctx context.Context, schoolID int64, email string) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, schoolID, email)
	}
	return false, nil
}

func (m *mockUserStore) UpdateLastLogin(ctx context.Context, schoolID, id int64) error {
	if m.updateLastLoginFn != nil {
		return m.updateLastLoginFn(ctx, schoolID, id)
	}
	return nil
}

func (m *mockUserStore) UpdateNameTx(ctx context.Context, tx pgx.Tx, schoolID, id int64, firstName, lastName string) error {
	if m.updateNameTxFn != nil {
		return m.updateNameTxFn(ctx, tx, schoolID, id, firstName, lastName)
	}
	return nil
}

func (m *mockUserStore) DeactivateTx(ctx context.Context, tx pgx.Tx, schoolID, id int64) error {
	if m.deactivateTxFn != nil {
		return m.deactivateTxFn(ctx, tx, schoolID, id)
	}
	return nil
}

type mockTokenStore struct {
	storeFn         func(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	getUserIDFn     func(ctx context.Context, token string) (int64, error)
	deleteFn        func(ctx context.Context, token string) error
	deleteForUserFn func(ctx context.Context, userID int64) error
}

func (m *mockTokenStore) Store(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	if m.storeFn != nil {
		return m.storeFn(ctx, userID, token, expiresAt)
	}
	return nil
}

func (m *mockTokenStore) GetUserID(ctx context.Context, token string) (int64, error) {
	if m.getUserIDFn != nil {
		return m.getUserIDFn(ctx, token)
	}
	return 0, nil
}

func (m *mockTokenStore) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockTokenStore) DeleteForUser(ctx context.Context, userID int64) error {
	if m.deleteForUserFn != nil {
		return m.deleteForUserFn(ctx, userID)
	}
	return nil
}

type mockStudentStore struct {
	createTxFn          func(ctx context.Context, tx pgx.Tx, student *models.Student) error
	getByIDFn           func(ctx context.Context, schoolID, id int64) (*models.Student, error)
	admissionNoExistsFn func(ctx context.Context, schoolID int64, admissionNo string) (bool, error)
	getAllFn            func(ctx context.Context, schoolID int64, offset uint64, limit int) ([]*models.Student, error)
	countFn             func(ctx context.Context, schoolID int64) (int64, error)
	countActiveFn       func(ctx context.Context, schoolID int64) (int64, error)
	updateFn            func(ctx context.Context, student *models.Student) error
	softDeleteTxFn      func(ctx context.Context, tx pgx.Tx, schoolID, id int64) error
	getAllForExportFn   func(ctx context.Context, schoolID int64) ([]repositories.StudentExport, error)
}

func (m *mockStudentStore) CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	if m.createTxFn != nil {
		return m.createTxFn(ctx, tx, student)
	}
	return nil
}

func (m *mockStudentStore) GetByID(ctx context.Context, schoolID, id int64) (*models.Student, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, schoolID, id)
	}
	return &models.Student{ID: id, SchoolID: schoolID, IsActive: true}, nil
}

func (m *mockStudentStore) AdmissionNoExists(ctx context.Context, schoolID int64, admissionNo string) (bool, error) {
	if m.admissionNoExistsFn != nil {
		return m.admissionNoExistsFn(ctx, schoolID, admissionNo)
	}
	return false, nil
}

func (m *mockStudentStore) GetAll(ctx context.Context, schoolID int64, offset uint64, limit int) ([]*models.Student, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, schoolID, offset, limit)
	}
	return nil, nil
}

func (m *mockStudentStore) Count(ctx context.Context, schoolID int64) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, schoolID)
	}
	return 0, nil
}

func (m *mockStudentStore) CountActive(ctx context.Context, schoolID int64) (int64, error) {
	if m.countActiveFn != nil {
		return m.countActiveFn(ctx, schoolID)
	}
	return 0, nil
}

func (m *mockStudentStore) Update(ctx context.Context, student *models.Student) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, student)
	}
	return nil
}

func (m *mockStudentStore) SoftDeleteTx(ctx context.Context, tx pgx.Tx, schoolID, id int64) error {
	if m.softDeleteTxFn != nil {
		return m.softDeleteTxFn(ctx, tx, schoolID, id)
	}
	return nil
}

func (m *mockStudentStore) GetAllForExport(ctx context.Context, schoolID int64) ([]repositories.StudentExport, error) {
	if m.getAllForExportFn != nil {
		return m.getAllForExportFn(ctx, schoolID)
	}
	return nil, nil
}

type mockTeacherStore struct {
	createTxFn     func(ctx context.Context, tx pgx.Tx, teacher *models.Teacher) error
	getByIDFn      func(ctx context.Context, schoolID, id int64) (*models.Teacher, error)
	getAllFn       func(ctx context.Context, schoolID int64) ([]*models.Teacher, error)
	countActiveFn  func(ctx context.Context, schoolID int64) (int64, error)
	updateFn       func(ctx context.Context, teacher *models.Teacher) error
	softDeleteTxFn func(ctx context.Context, tx pgx.Tx, schoolID, id int64) error
}

func (m *mockTeacherStore) CreateTx(ctx context.Context, tx pgx.Tx, teacher *models.Teacher) error {
	if m.createTxFn != nil {
		return m.createTxFn(ctx, tx, teacher)
	}
	return nil
}

func (m *mockTeacherStore) GetByID(ctx context.Context, schoolID, id int64) (*models.Teacher, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, schoolID, id)
	}
	return &models.Teacher{ID: id, SchoolID: schoolID, IsActive: true}, nil
}

func (m *mockTeacherStore) GetAll(ctx context.Context, schoolID int64) ([]*models.Teacher, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, schoolID)
	}
	return nil, nil
}

func (m *mockTeacherStore) CountActive(ctx context.Context, schoolID int64) (int64, error) {
	if m.countActiveFn != nil {
		return m.countActiveFn(ctx, schoolID)
	}
	return 0, nil
}

func (m *mockTeacherStore) Update(ctx context.Context, teacher *models.Teacher) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, teacher)
	}
	return nil
}

func (m *mockTeacherStore) SoftDeleteTx(ctx context.Context, tx pgx.Tx, schoolID, id int64) error {
	if m.softDeleteTxFn != nil {
		return m.softDeleteTxFn(ctx, tx, schoolID, id)
	}
	return nil
}

type mockAcademicStore struct {
	createClassFn        func(ctx context.Context, class *models.Class) error
	getClassesFn         func(ctx context.Context, schoolID int64) ([]*models.Class, error)
	classExistsFn        func(ctx context.Context, schoolID int64, name, section string) (bool, error)
	createSubjectFn      func(ctx context.Context, subject *models.Subject) error
	getSubjectsFn        func(ctx context.Context, schoolID int64) ([]*models.Subject, error)
	subjectExistsFn      func(ctx context.Context, schoolID int64, name string) (bool, error)
	createAcademicYearFn func(ctx context.Context, year *models.AcademicYear) error
	getAcademicYearsFn   func(ctx context.Context, schoolID int64) ([]*models.AcademicYear, error)
	academicYearExistsFn func(ctx context.Context, schoolID int64, name string) (bool, error)
}

func (m *mockAcademicStore) CreateClass(ctx context.Context, class *models.Class) error {
	if m.createClassFn != nil {
		return m.createClassFn(ctx, class)
	}
	return nil
}

func (m *mockAcademicStore) GetClasses(ctx context.Context, schoolID int64) ([]*models.Class, error) {
	if m.getClassesFn != nil {
		return m.getClassesFn(ctx, schoolID)
	}
	return nil, nil
}

func (m *mockAcademicStore) ClassExists(ctx context.Context, schoolID int64, name, section string) (bool, error) {
	if m.classExistsFn != nil {
		return m.classExistsFn(ctx, schoolID, name, section)
	}
	return false, nil
}

func (m *mockAcademicStore) CreateSubject(ctx context.Context, subject *models.Subject) error {
	if m.createSubjectFn != nil {
		return m.createSubjectFn(ctx, subject)
	}
	return nil
}

func (m *mockAcademicStore) GetSubjects(ctx context.Context, schoolID int64) ([]*models.Subject, error) {
	if m.getSubjectsFn != nil {
		return m.getSubjectsFn(ctx, schoolID)
	}
	return nil, nil
}

func (m *mockAcademicStore) SubjectExists(ctx context.Context, schoolID int64, name string) (bool, error) {
	if m.subjectExistsFn != nil {
		return m.subjectExistsFn(ctx, schoolID, name)
	}
	return false, nil
}

func (m *mockAcademicStore) CreateAcademicYear(ctx context.Context, year *models.AcademicYear) error {
	if m.createAcademicYearFn != nil {
		return m.createAcademicYearFn(ctx, year)
	}
	return nil
}

func (m *mockAcademicStore) GetAcademicYears(ctx context.Context, schoolID int64) ([]*models.AcademicYear, error) {
	if m.getAcademicYearsFn != nil {
		return m.getAcademicYearsFn(ctx, schoolID)
	}
	return nil, nil
}

func (m *mockAcademicStore) AcademicYearExists(ctx context.Context, schoolID int64, name string) (bool, error) {
	if m.academicYearExistsFn != nil {
		return m.academicYearExistsFn(ctx, schoolID, name)
	}
	return false, nil
}

type mockAttendanceStore struct {
	deleteForDateTxFn func(ctx context.Context, tx pgx.Tx, schoolID int64, date time.Time) error
	insertTxFn        func(ctx context.Context, tx pgx.Tx, record *models.Attendance) error
	getByDateFn       func(ctx context.Context, schoolID int64, date time.Time) ([]*models.Attendance, error)
	countForStudentFn func(ctx context.Context, schoolID, studentID int64) (int, int, error)
	countForDateFn    func(ctx context.Context, schoolID int64, date time.Time) (int, int, error)
	getForStudentFn   func(ctx context.Context, schoolID, studentID int64) ([]*models.Attendance, error)
}

func (m *mockAttendanceStore) DeleteForDateTx(ctx context.Context, tx pgx.Tx, schoolID int64, date time.Time) error {
	if m.deleteForDateTxFn != nil {
		return m.deleteForDateTxFn(ctx, tx, schoolID, date)
	}
	return nil
}

func (m *mockAttendanceStore) InsertTx(ctx context.Context, tx pgx.Tx, record *models.Attendance) error {
	if m.insertTxFn != nil {
		return m.insertTxFn(ctx, tx, record)
	}
	return nil
}

func (m *mockAttendanceStore) GetByDate(ctx context.Context, schoolID int64, date time.Time) ([]*models.Attendance, error) {
	if m.getByDateFn != nil {
		return m.getByDateFn(ctx, schoolID, date)
	}
	return nil, nil
}

func (m *mockAttendanceStore) CountForStudent(ctx context.Context, schoolID, studentID int64) (int, int, error) {
	if m.countForStudentFn != nil {
		return m.countForStudentFn(ctx, schoolID, studentID)
	}
	return 0, 0, nil
}

func (m *mockAttendanceStore) CountForDate(ctx context.Context, schoolID int64, date time.Time) (int, int, error) {
	if m.countForDateFn != nil {
		return m.countForDateFn(ctx, schoolID, date)
	}
	return 0, 0, nil
}

func (m *mockAttendanceStore) GetForStudent(ctx context.Context, schoolID, studentID int64) ([]*models.Attendance, error) {
	if m.getForStudentFn != nil {
		return m.getForStudentFn(ctx, schoolID, studentID)
	}
	return nil, nil
}

type mockGradeStore struct {
	createFn            func(ctx context.Context, grade *models.Grade) error
	getForStudentFn     func(ctx context.Context, schoolID, studentID int64) ([]*models.Grade, error)
	averageForStudentFn func(ctx context.Context, schoolID, studentID int64) (int, float64, error)
}

func (m *mockGradeStore) Create(ctx context.Context, grade *models.Grade) error {
	if m.createFn != nil {
		return m.createFn(ctx, grade)
	}
	return nil
}

func (m *mockGradeStore) GetForStudent(ctx context.Context, schoolID, studentID int64) ([]*models.Grade, error) {
	if m.getForStudentFn != nil {
		return m.getForStudentFn(ctx, schoolID, studentID)
	}
	return nil, nil
}

func (m *mockGradeStore) AverageForStudent(ctx context.Context, schoolID, studentID int64) (int, float64, error) {
	if m.averageForStudentFn != nil {
		return m.averageForStudentFn(ctx, schoolID, studentID)
	}
	return 0, 0, nil
}

type mockFeeStore struct {
	createStructureFn         func(ctx context.Context, fs *models.FeeStructure) error
	getStructureByIDFn        func(ctx context.Context, schoolID, id int64) (*models.FeeStructure, error)
	getStructuresFn           func(ctx context.Context, schoolID int64, className string) ([]*models.FeeStructure, error)
	createPaymentFn           func(ctx context.Context, p *models.FeePayment) error
	getPaymentsForStudentFn   func(ctx context.Context, schoolID, studentID int64) ([]*models.FeePayment, error)
	totalPaidForStudentFn     func(ctx context.Context, schoolID, studentID int64) (float64, error)
	totalApplicableForClassFn func(ctx context.Context, schoolID int64, className, academicYear string) (float64, error)
	sumPaymentsBetweenFn      func(ctx context.Context, schoolID int64, from, to time.Time) (float64, error)
	revenueByMonthFn          func(ctx context.Context, schoolID int64, from, to time.Time) (map[string]float64, error)
}

func (m *mockFeeStore) CreateStructure(ctx context.Context, fs *models.FeeStructure) error {
	if m.createStructureFn != nil {
		return m.createStructureFn(ctx, fs)
	}
	return nil
}

func (m *mockFeeStore) GetStructureByID(ctx context.Context, schoolID, id int64) (*models.FeeStructure, error) {
	if m.getStructureByIDFn != nil {
		return m.getStructureByIDFn(ctx, schoolID, id)
	}
	return &models.FeeStructure{ID: id, SchoolID: schoolID}, nil
}

func (m *mockFeeStore) GetStructures(ctx context.Context, schoolID int64, className string) ([]*models.FeeStructure, error) {
	if m.getStructuresFn != nil {
		return m.getStructuresFn(ctx, schoolID, className)
	}
	return nil, nil
}

func (m *mockFeeStore) CreatePayment(ctx context.Context, p *models.FeePayment) error {
	if m.createPaymentFn != nil {
		return m.createPaymentFn(ctx, p)
	}
	return nil
}

func (m *mockFeeStore) GetPaymentsForStudent(ctx context.Context, schoolID, studentID int64) ([]*models.FeePayment, error) {
	if m.getPaymentsForStudentFn != nil {
		return m.getPaymentsForStudentFn(ctx, schoolID, studentID)
	}
	return nil, nil
}

func (m *mockFeeStore) TotalPaidForStudent(ctx context.Context, schoolID, studentID int64) (float64, error) {
	if m.totalPaidForStudentFn != nil {
		return m.totalPaidForStudentFn(ctx, schoolID, studentID)
	}
	return 0, nil
}

func (m *mockFeeStore) TotalApplicableForClass(ctx context.Context, schoolID int64, className, academicYear string) (float64, error) {
	if m.totalApplicableForClassFn != nil {
		return m.totalApplicableForClassFn(ctx, schoolID, className, academicYear)
	}
	return 0, nil
}

func (m *mockFeeStore) SumPaymentsBetween(ctx context.Context, schoolID int64, from, to time.Time) (float64, error) {
	if m.sumPaymentsBetweenFn != nil {
		return m.sumPaymentsBetweenFn(ctx, schoolID, from, to)
	}
	return 0, nil
}

func (m *mockFeeStore) RevenueByMonth(ctx context.Context, schoolID int64, from, to time.Time) (map[string]float64, error) {
	if m.revenueByMonthFn != nil {
		return m.revenueByMonthFn(ctx, schoolID, from, to)
	}
	return map[string]float64{}, nil
}

type mockNotificationStore struct {
	createFn       func(ctx context.Context, n *models.Notification) error
	getUnsentFn    func(ctx context.Context, limit int) ([]*models.Notification, error)
	markSentFn     func(ctx context.Context, id int64) error
	getForTargetFn func(ctx context.Context, schoolID int64, role models.RoleType, userID int64) ([]*models.Notification, error)
}

func (m *mockNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	if m.createFn != nil {
		return m.createFn(ctx, n)
	}
	return nil
}

func (m *mockNotificationStore) GetUnsent(ctx context.Context, limit int) ([]*models.Notification, error) {
	if m.getUnsentFn != nil {
		return m.getUnsentFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockNotificationStore) MarkSent(ctx context.Context, id int64) error {
	if m.markSentFn != nil {
		return m.markSentFn(ctx, id)
	}
	return nil
}

func (m *mockNotificationStore) GetForTarget(ctx context.Context, schoolID int64, role models.RoleType, userID int64) ([]*models.Notification, error) {
	if m.getForTargetFn != nil {
		return m.getForTargetFn(ctx, schoolID, role, userID)
	}
	return nil, nil
}

type mockComplaintStore struct {
	createFn       func(ctx context.Context, c *models.Complaint) error
	getByIDFn      func(ctx context.Context, schoolID, id int64) (*models.Complaint, error)
	getAllFn       func(ctx context.Context, schoolID int64) ([]*models.Complaint, error)
	countOpenFn    func(ctx context.Context, schoolID int64) (int64, error)
	updateStatusFn func(ctx context.Context, c *models.Complaint) error
}

func (m *mockComplaintStore) Create(ctx context.Context, c *models.Complaint) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return nil
}

func (m *mockComplaintStore) GetByID(ctx context.Context, schoolID, id int64) (*models.Complaint, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, schoolID, id)
	}
	return nil, nil
}

func (m *mockComplaintStore) GetAll(ctx context.Context, schoolID int64) ([]*models.Complaint, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, schoolID)
	}
	return nil, nil
}

func (m *mockComplaintStore) CountOpen(ctx context.Context, schoolID int64) (int64, error) {
	if m.countOpenFn != nil {
		return m.countOpenFn(ctx, schoolID)
	}
	return 0, nil
}

func (m *mockComplaintStore) UpdateStatus(ctx context.Context, c *models.Complaint) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, c)
	}
	return nil
}

type mockBillingStore struct {
	createFn       func(ctx context.Context, b *models.BillingRecord) error
	getByIDFn      func(ctx context.Context, id int64) (*models.BillingRecord, error)
	getForSchoolFn func(ctx context.Context, schoolID int64) ([]*models.BillingRecord, error)
	getAllFn       func(ctx context.Context) ([]*models.BillingRecord, error)
	updateStatusFn func(ctx context.Context, id int64, status models.BillingStatus, paidAt *time.Time) error
	markOverdueFn  func(ctx context.Context, asOf time.Time) (int64, error)
}

func (m *mockBillingStore) Create(ctx context.Context, b *models.BillingRecord) error {
	if m.createFn != nil {
		return m.createFn(ctx, b)
	}
	return nil
}

func (m *mockBillingStore) GetByID(ctx context.Context, id int64) (*models.BillingRecord, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBillingStore) GetForSchool(ctx context.Context, schoolID int64) ([]*models.BillingRecord, error) {
	if m.getForSchoolFn != nil {
		return m.getForSchoolFn(ctx, schoolID)
	}
	return nil, nil
}

func (m *mockBillingStore) GetAll(ctx context.Context) ([]*models.BillingRecord, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockBillingStore) UpdateStatus(ctx context.Context, id int64, status models.BillingStatus, paidAt *time.Time) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status, paidAt)
	}
	return nil
}

func (m *mockBillingStore) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	if m.markOverdueFn != nil {
		return m.markOverdueFn(ctx, asOf)
	}
	return 0, nil
}
