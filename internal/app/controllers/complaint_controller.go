package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// ComplaintController handles the parent complaint workflow
type ComplaintController struct {
	complaintService services.ComplaintService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService services.ComplaintService) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
	}
}

// CreateComplaint submits a complaint
// @Summary Submit a complaint
// @Description Submits a parent complaint. New complaints start in the OPEN status.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateComplaintRequest true "Complaint content"
// @Success 201 {object} dto.APIResponse{data=models.Complaint} "Complaint submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints [post]
func (c *ComplaintController) CreateComplaint(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	complaint, err := c.complaintService.CreateComplaint(ctx, schoolID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(complaint))
}

// GetComplaintByID retrieves a complaint
// @Summary Get complaint details
// @Description Returns a single complaint within the caller's school.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Complaint} "Complaint retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid complaint ID"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints/{id} [get]
func (c *ComplaintController) GetComplaintByID(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	complaint, err := c.complaintService.GetComplaint(ctx, schoolID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(complaint))
}

// GetAllComplaints lists the school's complaints
// @Summary List complaints
// @Description Returns all complaints of the caller's school, most recent first.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Complaint} "Complaints retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints [get]
func (c *ComplaintController) GetAllComplaints(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	complaints, err := c.complaintService.GetComplaints(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(complaints))
}

// UpdateComplaint transitions a complaint's status
// @Summary Update a complaint
// @Description Transitions a complaint's status, optionally attaching a response. Invalid transitions (such as reopening a closed complaint) are rejected.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID" Format(int64) minimum(1)
// @Param request body dto.UpdateComplaintRequest true "New status and optional response"
// @Success 200 {object} dto.APIResponse{data=models.Complaint} "Complaint updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints/{id} [put]
func (c *ComplaintController) UpdateComplaint(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	complaint, err := c.complaintService.UpdateComplaint(ctx, schoolID, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(complaint))
}
