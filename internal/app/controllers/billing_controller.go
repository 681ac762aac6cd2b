package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// BillingController handles platform invoices against tenant schools.
// All routes are restricted to the super-admin role.
type BillingController struct {
	billingService services.BillingService
}

// NewBillingController creates a new BillingController
func NewBillingController(billingService services.BillingService) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

// CreateBillingRecord raises an invoice
// @Summary Create a billing record
// @Description Raises a platform invoice against a school for a billing period. A unique invoice number is issued. Super-admin only.
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBillingRecordRequest true "Invoice information"
// @Success 201 {object} dto.APIResponse{data=models.BillingRecord} "Billing record created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 409 {object} dto.ErrorResponse "Invoice number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /billing [post]
func (c *BillingController) CreateBillingRecord(ctx *gin.Context) {
	var req dto.CreateBillingRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record, err := c.billingService.CreateBillingRecord(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(record))
}

// GetBillingRecords lists invoices
// @Summary List billing records
// @Description Returns billing records across all schools, or for one school when the schoolId query parameter is given. Super-admin only.
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param schoolId query int false "Filter by school ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.BillingRecord} "Billing records retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /billing [get]
func (c *BillingController) GetBillingRecords(ctx *gin.Context) {
	var schoolID int64
	if raw := ctx.Query("schoolId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schoolId").
				WithField("schoolId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		schoolID = parsed
	}

	records, err := c.billingService.GetBillingRecords(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// GetBillingRecordByID retrieves an invoice
// @Summary Get billing record details
// @Description Returns a single billing record by ID. Super-admin only.
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path int true "Billing record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.BillingRecord} "Billing record retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid billing record ID"
// @Failure 404 {object} dto.ErrorResponse "Billing record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /billing/{id} [get]
func (c *BillingController) GetBillingRecordByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	record, err := c.billingService.GetBillingRecord(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// UpdateBillingStatus transitions an invoice's status
// @Summary Update billing status
// @Description Transitions a billing record's status. Marking an invoice PAID stamps the payment time; paid invoices cannot change further. Super-admin only.
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Billing record ID" Format(int64) minimum(1)
// @Param request body dto.UpdateBillingStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.BillingRecord} "Billing record updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Billing record not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /billing/{id}/status [put]
func (c *BillingController) UpdateBillingStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBillingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record, err := c.billingService.UpdateBillingStatus(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// MarkOverdueInvoices sweeps past-due invoices
// @Summary Mark overdue invoices
// @Description Flips every pending invoice whose due date has passed to OVERDUE and returns the number of records updated. Super-admin only.
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=map[string]int64} "Sweep completed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /billing/mark-overdue [post]
func (c *BillingController) MarkOverdueInvoices(ctx *gin.Context) {
	updated, err := c.billingService.MarkOverdueInvoices(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"updated": updated}))
}
