package services

import (
	"context"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
)

// SchoolService defines platform-level school management operations.
// Super-admin scope only; tenant registration lives in AuthService.
type SchoolService interface {
	GetSchool(ctx context.Context, id int64) (*models.School, error)
	GetSchools(ctx context.Context) ([]*models.School, error)
	UpdateSchool(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error)
	SuspendSchool(ctx context.Context, id int64) error
}

type schoolServiceImpl struct {
	schoolRepo schoolStore
}

// NewSchoolService creates a new school service
func NewSchoolService(schoolRepo schoolStore) SchoolService {
	return &schoolServiceImpl{schoolRepo: schoolRepo}
}

// GetSchool retrieves one school.
func (s *schoolServiceImpl) GetSchool(ctx context.Context, id int64) (*models.School, error) {
	return s.schoolRepo.GetByID(ctx, id)
}

// GetSchools lists all schools.
func (s *schoolServiceImpl) GetSchools(ctx context.Context) ([]*models.School, error) {
	return s.schoolRepo.GetAll(ctx)
}

// UpdateSchool updates tenant metadata.
func (s *schoolServiceImpl) UpdateSchool(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error) {
	school, err := s.schoolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		school.Name = *req.Name
	}
	if req.Plan != nil {
		school.Plan = *req.Plan
	}
	if req.IsActive != nil {
		school.IsActive = *req.IsActive
	}

	if err := s.schoolRepo.Update(ctx, school); err != nil {
		return nil, err
	}

	return school, nil
}

// SuspendSchool suspends a tenant. Its subdomain stops resolving but no data
// is removed; reactivation is a metadata update.
func (s *schoolServiceImpl) SuspendSchool(ctx context.Context, id int64) error {
	if err := s.schoolRepo.Suspend(ctx, id); err != nil {
		return err
	}

	logger.Warn().Int64("schoolId", id).Msg("School suspended")
	return nil
}
