package services

import (
	"context"
	"fmt"
	"time"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
)

// Default reference data created for a fresh school. Seeding is idempotent:
// entities are matched by natural key, never by ID.
var (
	defaultClassNames = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	defaultSections   = []string{"A", "B"}

	defaultSubjects = []models.Subject{
		{Name: "Mathematics", Code: "MATH"},
		{Name: "Science", Code: "SCI"},
		{Name: "English", Code: "ENG"},
		{Name: "Social Studies", Code: "SOC"},
		{Name: "Computer Science", Code: "CS"},
	}
)

// AcademicService defines operations on classes, subjects and academic years
type AcademicService interface {
	CreateClass(ctx context.Context, schoolID int64, req *dto.CreateClassRequest) (*models.Class, error)
	GetClasses(ctx context.Context, schoolID int64) ([]*models.Class, error)
	CreateSubject(ctx context.Context, schoolID int64, req *dto.CreateSubjectRequest) (*models.Subject, error)
	GetSubjects(ctx context.Context, schoolID int64) ([]*models.Subject, error)
	GetAcademicYears(ctx context.Context, schoolID int64) ([]*models.AcademicYear, error)
	SeedDefaults(ctx context.Context, schoolID int64) error
}

type academicServiceImpl struct {
	academicRepo academicStore
	now          func() time.Time
}

// NewAcademicService creates a new academic service
func NewAcademicService(academicRepo academicStore) AcademicService {
	return &academicServiceImpl{academicRepo: academicRepo, now: time.Now}
}

// CreateClass adds a class/section. Duplicate natural keys conflict.
func (s *academicServiceImpl) CreateClass(ctx context.Context, schoolID int64, req *dto.CreateClassRequest) (*models.Class, error) {
	section := req.Section
	if section == "" {
		section = "A"
	}

	class := &models.Class{SchoolID: schoolID, Name: req.Name, Section: section}
	if err := s.academicRepo.CreateClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// GetClasses lists the school's classes, creating the starter set when the
// school has none yet.
func (s *academicServiceImpl) GetClasses(ctx context.Context, schoolID int64) ([]*models.Class, error) {
	classes, err := s.academicRepo.GetClasses(ctx, schoolID)
	if err != nil || len(classes) > 0 {
		return classes, err
	}
	if err := s.SeedDefaults(ctx, schoolID); err != nil {
		return nil, err
	}
	return s.academicRepo.GetClasses(ctx, schoolID)
}

// CreateSubject adds a subject.
func (s *academicServiceImpl) CreateSubject(ctx context.Context, schoolID int64, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	subject := &models.Subject{SchoolID: schoolID, Name: req.Name, Code: req.Code}
	if err := s.academicRepo.CreateSubject(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// GetSubjects lists the school's subjects, creating the starter set when the
// school has none yet.
func (s *academicServiceImpl) GetSubjects(ctx context.Context, schoolID int64) ([]*models.Subject, error) {
	subjects, err := s.academicRepo.GetSubjects(ctx, schoolID)
	if err != nil || len(subjects) > 0 {
		return subjects, err
	}
	if err := s.SeedDefaults(ctx, schoolID); err != nil {
		return nil, err
	}
	return s.academicRepo.GetSubjects(ctx, schoolID)
}

// GetAcademicYears lists the school's academic years, creating the current
// year when the school has none yet.
func (s *academicServiceImpl) GetAcademicYears(ctx context.Context, schoolID int64) ([]*models.AcademicYear, error) {
	years, err := s.academicRepo.GetAcademicYears(ctx, schoolID)
	if err != nil || len(years) > 0 {
		return years, err
	}
	if err := s.SeedDefaults(ctx, schoolID); err != nil {
		return nil, err
	}
	return s.academicRepo.GetAcademicYears(ctx, schoolID)
}

// SeedDefaults creates the starter classes, subjects and current academic
// year for a school. Entities that already exist (matched by natural key)
// are left untouched, so running it twice changes nothing.
func (s *academicServiceImpl) SeedDefaults(ctx context.Context, schoolID int64) error {
	if schoolID <= 0 {
		return apperrors.ErrSchoolNotFound
	}

	seeded := 0

	for _, name := range defaultClassNames {
		for _, section := range defaultSections {
			exists, err := s.academicRepo.ClassExists(ctx, schoolID, name, section)
			if err != nil {
				return fmt.Errorf("failed to check class %s-%s: %w", name, section, err)
			}
			if exists {
				continue
			}
			class := &models.Class{SchoolID: schoolID, Name: name, Section: section}
			if err := s.academicRepo.CreateClass(ctx, class); err != nil {
				return fmt.Errorf("failed to seed class %s-%s: %w", name, section, err)
			}
			seeded++
		}
	}

	for _, subject := range defaultSubjects {
		exists, err := s.academicRepo.SubjectExists(ctx, schoolID, subject.Name)
		if err != nil {
			return fmt.Errorf("failed to check subject %s: %w", subject.Name, err)
		}
		if exists {
			continue
		}
		seed := subject
		seed.SchoolID = schoolID
		if err := s.academicRepo.CreateSubject(ctx, &seed); err != nil {
			return fmt.Errorf("failed to seed subject %s: %w", subject.Name, err)
		}
		seeded++
	}

	yearName := CurrentAcademicYearName(s.now())
	exists, err := s.academicRepo.AcademicYearExists(ctx, schoolID, yearName)
	if err != nil {
		return fmt.Errorf("failed to check academic year %s: %w", yearName, err)
	}
	if !exists {
		year := &models.AcademicYear{SchoolID: schoolID, Name: yearName, IsCurrent: true}
		if err := s.academicRepo.CreateAcademicYear(ctx, year); err != nil {
			return fmt.Errorf("failed to seed academic year %s: %w", yearName, err)
		}
		seeded++
	}

	if seeded > 0 {
		logger.Info().Int64("schoolId", schoolID).Int("entities", seeded).Msg("Seeded school defaults")
	}

	return nil
}

// CurrentAcademicYearName derives the "YYYY-YYYY" academic year containing t.
// The year rolls over in June.
func CurrentAcademicYearName(t time.Time) string {
	start := t.Year()
	if t.Month() < time.June {
		start--
	}
	return fmt.Sprintf("%d-%d", start, start+1)
}
