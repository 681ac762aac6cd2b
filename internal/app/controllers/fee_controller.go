package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// FeeController handles fee structures and payments
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{
		feeService: feeService,
	}
}

// CreateFeeStructure defines a fee
// @Summary Create a fee structure
// @Description Defines a fee for a class and academic year.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeStructureRequest true "Fee structure information"
// @Success 201 {object} dto.APIResponse{data=models.FeeStructure} "Fee structure created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/structures [post]
func (c *FeeController) CreateFeeStructure(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	var req dto.CreateFeeStructureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	structure, err := c.feeService.CreateFeeStructure(ctx, schoolID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(structure))
}

// GetFeeStructures lists fee structures
// @Summary List fee structures
// @Description Returns the school's fee structures, optionally filtered by class name.
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param class query string false "Class name filter" example(5)
// @Success 200 {object} dto.APIResponse{data=[]models.FeeStructure} "Fee structures retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/structures [get]
func (c *FeeController) GetFeeStructures(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	structures, err := c.feeService.GetFeeStructures(ctx, schoolID, ctx.Query("class"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(structures))
}

// RecordPayment records a fee payment
// @Summary Record a payment
// @Description Records a payment against a fee structure and issues a unique receipt number.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordPaymentRequest true "Payment information"
// @Success 201 {object} dto.APIResponse{data=models.FeePayment} "Payment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or fee structure not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/payments [post]
func (c *FeeController) RecordPayment(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	payment, err := c.feeService.RecordPayment(ctx, schoolID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(payment))
}

// GetStudentPayments lists a student's payments
// @Summary Get student payments
// @Description Returns all payments recorded for one student, most recent first.
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.FeePayment} "Payments retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/students/{studentId}/payments [get]
func (c *FeeController) GetStudentPayments(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	payments, err := c.feeService.GetStudentPayments(ctx, schoolID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(payments))
}

// GetStudentFeeSummary returns a student's fee roll-up
// @Summary Get student fee summary
// @Description Returns the applicable, paid and pending totals for one student based on their class's fee structures.
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentFeeSummaryResponse} "Summary retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/students/{studentId}/summary [get]
func (c *FeeController) GetStudentFeeSummary(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	summary, err := c.feeService.GetStudentFeeSummary(ctx, schoolID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}
