package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// AcademicController handles classes, subjects and academic years
type AcademicController struct {
	academicService services.AcademicService
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(academicService services.AcademicService) *AcademicController {
	return &AcademicController{
		academicService: academicService,
	}
}

// CreateClass adds a class/section
// @Summary Create a class
// @Description Adds a class/section to the school. The section defaults to "A" when omitted.
// @Tags academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class information"
// @Success 201 {object} dto.APIResponse{data=models.Class} "Class created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Class already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [post]
func (c *AcademicController) CreateClass(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	class, err := c.academicService.CreateClass(ctx, schoolID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(class))
}

// GetAllClasses lists the school's classes
// @Summary List classes
// @Description Returns all classes/sections of the caller's school.
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Class} "Classes retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [get]
func (c *AcademicController) GetAllClasses(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	classes, err := c.academicService.GetClasses(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(classes))
}

// CreateSubject adds a subject
// @Summary Create a subject
// @Description Adds a subject to the school's catalogue.
// @Tags academics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Subject already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [post]
func (c *AcademicController) CreateSubject(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	subject, err := c.academicService.CreateSubject(ctx, schoolID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(subject))
}

// GetAllSubjects lists the school's subjects
// @Summary List subjects
// @Description Returns all subjects of the caller's school.
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *AcademicController) GetAllSubjects(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	subjects, err := c.academicService.GetSubjects(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subjects))
}

// GetAcademicYears lists the school's academic years
// @Summary List academic years
// @Description Returns all academic years of the caller's school, most recent first.
// @Tags academics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicYear} "Academic years retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years [get]
func (c *AcademicController) GetAcademicYears(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	years, err := c.academicService.GetAcademicYears(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(years))
}
