package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/app/services"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// AttendanceController handles daily attendance rosters
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// MarkAttendance submits the roster for a date
// @Summary Mark attendance
// @Description Submits the complete attendance roster for a date. Existing rows for the date are replaced atomically, so re-submitting corrects earlier entries.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Date and roster entries"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Attendance recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid date, status or duplicate student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.attendanceService.MarkAttendance(ctx, schoolID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Attendance recorded"}))
}

// GetAttendanceByDate lists the roster for a date
// @Summary Get attendance by date
// @Description Returns all attendance rows of the school for the given date.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)" example(2024-06-01)
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance} "Attendance retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) GetAttendanceByDate(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}

	date := ctx.Query("date")
	if date == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "date query parameter is required").
			WithField("date")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	rows, err := c.attendanceService.GetByDate(ctx, schoolID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// GetStudentSummary returns a student's attendance roll-up
// @Summary Get student attendance summary
// @Description Returns the total, present and percentage figures for one student.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceSummaryResponse} "Summary retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/students/{studentId}/summary [get]
func (c *AttendanceController) GetStudentSummary(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	summary, err := c.attendanceService.GetStudentSummary(ctx, schoolID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}

// GetStudentHistory lists a student's attendance rows
// @Summary Get student attendance history
// @Description Returns the full attendance history of one student, most recent first.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance} "History retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/students/{studentId} [get]
func (c *AttendanceController) GetStudentHistory(ctx *gin.Context) {
	schoolID, ok := requireSchoolID(ctx)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	rows, err := c.attendanceService.GetStudentHistory(ctx, schoolID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}
