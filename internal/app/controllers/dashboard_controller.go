package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// DashboardController serves pre-aggregated reporting views
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the admin dashboard numbers
// @Summary Get dashboard
// @Description Returns active student/teacher counts, today's attendance percentage, fees collected this month and pending complaints for the caller's school. All figures are zero for an empty school.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.GetDashboard(ctx, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// GetRevenueReport returns collected fees grouped by month
// @Summary Get revenue report
// @Description Returns fee collections grouped by month over the given window. The window defaults to the last twelve months when from/to are omitted.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param from query string false "Window start (YYYY-MM-DD)" example(2024-01-01)
// @Param to query string false "Window end, inclusive (YYYY-MM-DD)" example(2024-06-30)
// @Success 200 {object} dto.APIResponse{data=dto.RevenueReportResponse} "Report retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid date window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/revenue [get]
func (c *DashboardController) GetRevenueReport(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	report, err := c.dashboardService.GetRevenueReport(ctx, schoolID, ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}
