package services

import (
	"context"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/pkg/apperrors"
)

// complaintTransitions lists the allowed status moves. A closed complaint is
// terminal.
var complaintTransitions = map[models.ComplaintStatus][]models.ComplaintStatus{
	models.ComplaintOpen:       {models.ComplaintInProgress, models.ComplaintResolved, models.ComplaintClosed},
	models.ComplaintInProgress: {models.ComplaintResolved, models.ComplaintClosed},
	models.ComplaintResolved:   {models.ComplaintClosed},
	models.ComplaintClosed:     {},
}

// ComplaintService defines complaint submission and resolution operations
type ComplaintService interface {
	CreateComplaint(ctx context.Context, schoolID, parentUserID int64, req *dto.CreateComplaintRequest) (*models.Complaint, error)
	GetComplaint(ctx context.Context, schoolID, id int64) (*models.Complaint, error)
	GetComplaints(ctx context.Context, schoolID int64) ([]*models.Complaint, error)
	UpdateComplaint(ctx context.Context, schoolID, id, resolverUserID int64, req *dto.UpdateComplaintRequest) (*models.Complaint, error)
}

type complaintServiceImpl struct {
	complaintRepo complaintStore
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo complaintStore) ComplaintService {
	return &complaintServiceImpl{complaintRepo: complaintRepo}
}

// CreateComplaint submits a new complaint in OPEN status.
func (s *complaintServiceImpl) CreateComplaint(ctx context.Context, schoolID, parentUserID int64, req *dto.CreateComplaintRequest) (*models.Complaint, error) {
	complaint := &models.Complaint{
		SchoolID:     schoolID,
		ParentUserID: parentUserID,
		Subject:      req.Subject,
		Message:      req.Message,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

// GetComplaint retrieves one complaint.
func (s *complaintServiceImpl) GetComplaint(ctx context.Context, schoolID, id int64) (*models.Complaint, error) {
	return s.complaintRepo.GetByID(ctx, schoolID, id)
}

// GetComplaints lists the school's complaints.
func (s *complaintServiceImpl) GetComplaints(ctx context.Context, schoolID int64) ([]*models.Complaint, error) {
	return s.complaintRepo.GetAll(ctx, schoolID)
}

// UpdateComplaint transitions a complaint's status and records the response
// and resolver. Illegal transitions are rejected before any write.
func (s *complaintServiceImpl) UpdateComplaint(ctx context.Context, schoolID, id, resolverUserID int64, req *dto.UpdateComplaintRequest) (*models.Complaint, error) {
	newStatus := models.ComplaintStatus(req.Status)
	if !newStatus.Valid() {
		return nil, apperrors.NewValidationError("status", "unknown complaint status: "+req.Status)
	}

	complaint, err := s.complaintRepo.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	if !complaintTransitionAllowed(complaint.Status, newStatus) {
		return nil, apperrors.ErrInvalidComplaintTransition
	}

	complaint.Status = newStatus
	if req.Response != "" {
		complaint.Response = &req.Response
	}
	complaint.ResolverUserID = &resolverUserID

	if err := s.complaintRepo.UpdateStatus(ctx, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

func complaintTransitionAllowed(from, to models.ComplaintStatus) bool {
	for _, allowed := range complaintTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
