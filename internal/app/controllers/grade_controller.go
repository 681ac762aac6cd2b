package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// GradeController handles exam grade recording and queries
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// RecordGrade records a grade
// @Summary Record a grade
// @Description Records an exam grade. The percentage and letter grade are derived on the server from the submitted marks. Each (student, subject, exam, year, term) combination can be recorded once.
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordGradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=models.Grade} "Grade recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid marks, exam type or term"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Grade already recorded for this exam"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [post]
func (c *GradeController) RecordGrade(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	var req dto.RecordGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	grade, err := c.gradeService.RecordGrade(ctx, schoolID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(grade))
}

// GetStudentGrades lists a student's grades
// @Summary Get student grades
// @Description Returns all recorded grades for one student.
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Grade} "Grades retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/students/{studentId} [get]
func (c *GradeController) GetStudentGrades(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	grades, err := c.gradeService.GetStudentGrades(ctx, schoolID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades))
}

// GetStudentAverage returns a student's grade roll-up
// @Summary Get student grade average
// @Description Returns the count and average percentage across all of one student's grades. An average of zero with zero count means no grades are recorded.
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.GradeAverageResponse} "Average retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/students/{studentId}/average [get]
func (c *GradeController) GetStudentAverage(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	average, err := c.gradeService.GetStudentAverage(ctx, schoolID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(average))
}
