package services

import (
	"context"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
)

// GradeService defines grade recording and reporting operations
type GradeService interface {
	RecordGrade(ctx context.Context, schoolID int64, req *dto.RecordGradeRequest) (*models.Grade, error)
	GetStudentGrades(ctx context.Context, schoolID, studentID int64) ([]*models.Grade, error)
	GetStudentAverage(ctx context.Context, schoolID, studentID int64) (*dto.GradeAverageResponse, error)
}

type gradeServiceImpl struct {
	gradeRepo   gradeStore
	studentRepo studentStore
}

// NewGradeService creates a new grade service
func NewGradeService(gradeRepo gradeStore, studentRepo studentStore) GradeService {
	return &gradeServiceImpl{
		gradeRepo:   gradeRepo,
		studentRepo: studentRepo,
	}
}

// RecordGrade stores a grade. Percentage and letter are always derived from
// the submitted marks; callers cannot supply their own.
func (s *gradeServiceImpl) RecordGrade(ctx context.Context, schoolID int64, req *dto.RecordGradeRequest) (*models.Grade, error) {
	examType := models.ExamType(req.ExamType)
	switch examType {
	case models.ExamMidterm, models.ExamFinal, models.ExamQuiz, models.ExamAssignment:
	default:
		return nil, apperrors.NewValidationError("examType", "unknown exam type: "+req.ExamType)
	}

	term := models.Term(req.Term)
	switch term {
	case models.TermFirst, models.TermSecond, models.TermThird:
	default:
		return nil, apperrors.NewValidationError("term", "unknown term: "+req.Term)
	}

	if req.MarksObtained > req.TotalMarks {
		return nil, apperrors.NewValidationError("marksObtained", "marks obtained cannot exceed total marks")
	}

	if _, err := s.studentRepo.GetByID(ctx, schoolID, req.StudentID); err != nil {
		return nil, err
	}

	percentage := req.MarksObtained / req.TotalMarks * 100

	grade := &models.Grade{
		SchoolID:      schoolID,
		StudentID:     req.StudentID,
		Subject:       req.Subject,
		ExamType:      examType,
		AcademicYear:  req.AcademicYear,
		Term:          term,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
		Percentage:    percentage,
		Letter:        LetterGrade(percentage),
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}

	return grade, nil
}

// GetStudentGrades lists a student's grades.
func (s *gradeServiceImpl) GetStudentGrades(ctx context.Context, schoolID, studentID int64) ([]*models.Grade, error) {
	if _, err := s.studentRepo.GetByID(ctx, schoolID, studentID); err != nil {
		return nil, err
	}

	return s.gradeRepo.GetForStudent(ctx, schoolID, studentID)
}

// GetStudentAverage returns the per-student grade roll-up. No grades means
// an average of 0, not an error.
func (s *gradeServiceImpl) GetStudentAverage(ctx context.Context, schoolID, studentID int64) (*dto.GradeAverageResponse, error) {
	if _, err := s.studentRepo.GetByID(ctx, schoolID, studentID); err != nil {
		return nil, err
	}

	count, average, err := s.gradeRepo.AverageForStudent(ctx, schoolID, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.GradeAverageResponse{
		StudentID:         studentID,
		GradeCount:        count,
		AveragePercentage: average,
	}, nil
}

// LetterGrade maps a percentage to its letter band.
func LetterGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 50:
		return "D"
	default:
		return "F"
	}
}
