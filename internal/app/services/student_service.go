package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/auth"
	"github.com/edupulse/schoolerp/internal/pkg/csvio"
	"github.com/edupulse/schoolerp/internal/pkg/helpers"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
)

// StudentService defines student enrollment and management operations
type StudentService interface {
	CreateStudent(ctx context.Context, schoolID int64, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudent(ctx context.Context, schoolID, id int64) (*dto.StudentResponse, error)
	GetStudents(ctx context.Context, schoolID int64, page, size int) (*dto.StudentListResponse, error)
	UpdateStudent(ctx context.Context, schoolID, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, schoolID, id int64) error
	ImportStudents(ctx context.Context, schoolID int64, r io.Reader) (*dto.ImportResultResponse, error)
	ExportStudents(ctx context.Context, schoolID int64, w io.Writer) error
}

type studentServiceImpl struct {
	tx          txRunner
	studentRepo studentStore
	userRepo    userStore
}

// NewStudentService creates a new student service
func NewStudentService(tx txRunner, studentRepo studentStore, userRepo userStore) StudentService {
	return &studentServiceImpl{
		tx:          tx,
		studentRepo: studentRepo,
		userRepo:    userRepo,
	}
}

// CreateStudent enrolls a student: backing user, optional find-or-create
// parent user, and the student row, all in one transaction.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, schoolID int64, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	exists, err := s.studentRepo.AdmissionNoExists(ctx, schoolID, req.AdmissionNo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAdmissionNoAlreadyExists
	}

	email := strings.ToLower(req.Email)
	if email == "" {
		email = generatedStudentEmail(schoolID, req.AdmissionNo)
	}

	section := req.Section
	if section == "" {
		section = "A"
	}

	var student *models.Student
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		studentPassword, err := auth.HashPassword(uuid.New().String())
		if err != nil {
			return fmt.Errorf("failed to hash student password: %w", err)
		}

		user := &models.User{
			SchoolID:  schoolID,
			Email:     email,
			Password:  studentPassword,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			RoleType:  models.RoleStudent,
		}
		if err := s.userRepo.CreateTx(ctx, tx, user); err != nil {
			return err
		}

		var parentID *int64
		if req.ParentEmail != "" {
			parent, err := s.findOrCreateParent(ctx, tx, schoolID, req)
			if err != nil {
				return err
			}
			parentID = &parent.ID
		}

		student = &models.Student{
			SchoolID:     schoolID,
			UserID:       user.ID,
			ParentUserID: parentID,
			AdmissionNo:  req.AdmissionNo,
			ClassName:    req.ClassName,
			Section:      section,
			IsActive:     true,
		}
		if err := s.studentRepo.CreateTx(ctx, tx, student); err != nil {
			return err
		}

		student.User = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("schoolId", schoolID).Str("admissionNo", student.AdmissionNo).Msg("Student enrolled")

	resp := s.toResponse(student)
	resp.ParentEmail = strings.ToLower(req.ParentEmail)
	return resp, nil
}

// findOrCreateParent reuses an existing parent account matched by email, so
// siblings share one parent user.
func (s *studentServiceImpl) findOrCreateParent(ctx context.Context, tx pgx.Tx, schoolID int64, req *dto.CreateStudentRequest) (*models.User, error) {
	parentEmail := strings.ToLower(req.ParentEmail)

	parent, err := s.userRepo.GetByEmailTx(ctx, tx, schoolID, parentEmail)
	if err == nil {
		if parent.RoleType != models.RoleParent {
			return nil, apperrors.NewConflictError("email belongs to a non-parent account")
		}
		return parent, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	parentPassword, err := auth.HashPassword(uuid.New().String())
	if err != nil {
		return nil, fmt.Errorf("failed to hash parent password: %w", err)
	}

	firstName := req.ParentFirst
	if firstName == "" {
		firstName = "Parent"
	}
	lastName := req.ParentLast
	if lastName == "" {
		lastName = req.LastName
	}

	parent = &models.User{
		SchoolID:  schoolID,
		Email:     parentEmail,
		Password:  parentPassword,
		FirstName: firstName,
		LastName:  lastName,
		RoleType:  models.RoleParent,
	}
	if err := s.userRepo.CreateTx(ctx, tx, parent); err != nil {
		return nil, err
	}

	return parent, nil
}

// GetStudent retrieves one student with its backing user.
func (s *studentServiceImpl) GetStudent(ctx context.Context, schoolID, id int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	if err := s.hydrate(ctx, student); err != nil {
		return nil, err
	}

	return s.toResponse(student), nil
}

// GetStudents lists students with pagination.
func (s *studentServiceImpl) GetStudents(ctx context.Context, schoolID int64, page, size int) (*dto.StudentListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, err := s.studentRepo.GetAll(ctx, schoolID, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.studentRepo.Count(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		if err := s.hydrate(ctx, student); err != nil {
			return nil, err
		}
		responses = append(responses, *s.toResponse(student))
	}

	return &dto.StudentListResponse{
		Students:   responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// UpdateStudent updates mutable fields of a student and, when names change,
// the backing user, in one transaction.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, schoolID, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	if req.ClassName != nil {
		student.ClassName = *req.ClassName
	}
	if req.Section != nil {
		student.Section = *req.Section
	}

	if err := s.hydrate(ctx, student); err != nil {
		return nil, err
	}

	firstName := student.User.FirstName
	lastName := student.User.LastName
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	if req.LastName != nil {
		lastName = *req.LastName
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if firstName != student.User.FirstName || lastName != student.User.LastName {
			if err := s.userRepo.UpdateNameTx(ctx, tx, schoolID, student.UserID, firstName, lastName); err != nil {
				return err
			}
		}
		return s.studentRepo.Update(ctx, student)
	})
	if err != nil {
		return nil, err
	}

	student.User.FirstName = firstName
	student.User.LastName = lastName
	return s.toResponse(student), nil
}

// DeleteStudent soft-deletes the student and deactivates its backing user.
// No rows are removed; history stays queryable.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, schoolID, id int64) error {
	student, err := s.studentRepo.GetByID(ctx, schoolID, id)
	if err != nil {
		return err
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.studentRepo.SoftDeleteTx(ctx, tx, schoolID, id); err != nil {
			return err
		}
		return s.userRepo.DeactivateTx(ctx, tx, schoolID, student.UserID)
	})
}

// ImportStudents bulk-enrolls students from a CSV stream. Malformed rows and
// per-row enrollment failures are counted and reported; they never abort the
// rest of the batch.
func (s *studentServiceImpl) ImportStudents(ctx context.Context, schoolID int64, r io.Reader) (*dto.ImportResultResponse, error) {
	rows, rowErrors, err := csvio.ReadStudents(r)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "unreadable csv file")
	}

	result := &dto.ImportResultResponse{
		Skipped: len(rowErrors),
		Errors:  rowErrors,
	}

	for _, row := range rows {
		req := &dto.CreateStudentRequest{
			AdmissionNo: row.AdmissionNo,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			ClassName:   row.ClassName,
			Section:     row.Section,
			ParentEmail: row.ParentEmail,
		}

		if _, err := s.CreateStudent(ctx, schoolID, req); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", row.AdmissionNo, err))
			continue
		}
		result.Imported++
	}

	logger.Info().Int64("schoolId", schoolID).
		Int("imported", result.Imported).Int("skipped", result.Skipped).
		Msg("Student import finished")

	return result, nil
}

// ExportStudents writes the school's active students as CSV in the fixed
// column order.
func (s *studentServiceImpl) ExportStudents(ctx context.Context, schoolID int64, w io.Writer) error {
	exports, err := s.studentRepo.GetAllForExport(ctx, schoolID)
	if err != nil {
		return err
	}

	rows := make([]csvio.StudentRow, 0, len(exports))
	for _, e := range exports {
		rows = append(rows, csvio.StudentRow{
			AdmissionNo: e.AdmissionNo,
			FirstName:   e.FirstName,
			LastName:    e.LastName,
			ClassName:   e.ClassName,
			Section:     e.Section,
			ParentEmail: e.ParentEmail,
		})
	}

	return csvio.WriteStudents(w, rows)
}

func (s *studentServiceImpl) hydrate(ctx context.Context, student *models.Student) error {
	if student.User == nil {
		user, err := s.userRepo.GetByID(ctx, student.SchoolID, student.UserID)
		if err != nil {
			return err
		}
		student.User = user
	}

	if student.Parent == nil && student.ParentUserID != nil {
		parent, err := s.userRepo.GetByID(ctx, student.SchoolID, *student.ParentUserID)
		if err != nil {
			return err
		}
		student.Parent = parent
	}

	return nil
}

func (s *studentServiceImpl) toResponse(student *models.Student) *dto.StudentResponse {
	resp := &dto.StudentResponse{
		ID:          student.ID,
		AdmissionNo: student.AdmissionNo,
		ClassName:   student.ClassName,
		Section:     student.Section,
		IsActive:    student.IsActive,
	}

	if student.User != nil {
		resp.FirstName = student.User.FirstName
		resp.LastName = student.User.LastName
		resp.Email = student.User.Email
	}
	if student.Parent != nil {
		resp.ParentEmail = student.Parent.Email
	}

	return resp
}

func generatedStudentEmail(schoolID int64, admissionNo string) string {
	return fmt.Sprintf("%s@students.school-%d.local", strings.ToLower(admissionNo), schoolID)
}
