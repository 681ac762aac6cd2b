package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/auth"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
)

// TeacherService defines teacher management operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, schoolID int64, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	GetTeacher(ctx context.Context, schoolID, id int64) (*models.Teacher, error)
	GetTeachers(ctx context.Context, schoolID int64) ([]*models.Teacher, error)
	UpdateTeacher(ctx context.Context, schoolID, id int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, schoolID, id int64) error
}

type teacherServiceImpl struct {
	tx          txRunner
	teacherRepo teacherStore
	userRepo    userStore
}

// NewTeacherService creates a new teacher service
func NewTeacherService(tx txRunner, teacherRepo teacherStore, userRepo userStore) TeacherService {
	return &teacherServiceImpl{
		tx:          tx,
		teacherRepo: teacherRepo,
		userRepo:    userRepo,
	}
}

// CreateTeacher creates the backing user account and the teacher row in one
// transaction.
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, schoolID int64, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	var teacher *models.Teacher

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		password, err := auth.HashPassword(uuid.New().String())
		if err != nil {
			return fmt.Errorf("failed to hash teacher password: %w", err)
		}

		user := &models.User{
			SchoolID:  schoolID,
			Email:     strings.ToLower(req.Email),
			Password:  password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			RoleType:  models.RoleTeacher,
		}
		if err := s.userRepo.CreateTx(ctx, tx, user); err != nil {
			return err
		}

		teacher = &models.Teacher{
			SchoolID:   schoolID,
			UserID:     user.ID,
			EmployeeNo: req.EmployeeNo,
			Specialty:  req.Specialty,
			IsActive:   true,
		}
		if err := s.teacherRepo.CreateTx(ctx, tx, teacher); err != nil {
			return err
		}

		teacher.User = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("schoolId", schoolID).Str("employeeNo", teacher.EmployeeNo).Msg("Teacher created")
	return teacher, nil
}

// GetTeacher retrieves one teacher with its backing user.
func (s *teacherServiceImpl) GetTeacher(ctx context.Context, schoolID, id int64) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, schoolID, teacher.UserID)
	if err != nil {
		return nil, err
	}
	teacher.User = user

	return teacher, nil
}

// GetTeachers lists the school's teachers.
func (s *teacherServiceImpl) GetTeachers(ctx context.Context, schoolID int64) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.GetAll(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	for _, teacher := range teachers {
		user, err := s.userRepo.GetByID(ctx, schoolID, teacher.UserID)
		if err != nil {
			return nil, err
		}
		teacher.User = user
	}

	return teachers, nil
}

// UpdateTeacher updates mutable teacher fields and, when names change, the
// backing user.
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, schoolID, id int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.GetTeacher(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	if req.Specialty != nil {
		teacher.Specialty = *req.Specialty
	}

	firstName := teacher.User.FirstName
	lastName := teacher.User.LastName
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	if req.LastName != nil {
		lastName = *req.LastName
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if firstName != teacher.User.FirstName || lastName != teacher.User.LastName {
			if err := s.userRepo.UpdateNameTx(ctx, tx, schoolID, teacher.UserID, firstName, lastName); err != nil {
				return err
			}
		}
		return s.teacherRepo.Update(ctx, teacher)
	})
	if err != nil {
		return nil, err
	}

	teacher.User.FirstName = firstName
	teacher.User.LastName = lastName
	return teacher, nil
}

// DeleteTeacher soft-deletes the teacher and deactivates its backing user.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, schoolID, id int64) error {
	teacher, err := s.teacherRepo.GetByID(ctx, schoolID, id)
	if err != nil {
		return err
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.teacherRepo.SoftDeleteTx(ctx, tx, schoolID, id); err != nil {
			return err
		}
		return s.userRepo.DeactivateTx(ctx, tx, schoolID, teacher.UserID)
	})
}
