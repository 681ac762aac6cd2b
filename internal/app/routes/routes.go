package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edupulse/schoolerp/internal/app/controllers"
	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/app/models/dto"
	"github.com/edupulse/schoolerp/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	schoolController *controllers.SchoolController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	academicController *controllers.AcademicController,
	attendanceController *controllers.AttendanceController,
	gradeController *controllers.GradeController,
	feeController *controllers.FeeController,
	notificationController *controllers.NotificationController,
	complaintController *controllers.ComplaintController,
	billingController *controllers.BillingController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		// Registration creates the tenant, so no tenant header is required
		auth.POST("/register", authController.RegisterSchool)

		// Login and refresh resolve the tenant from the X-Tenant header
		tenantScoped := auth.Group("")
		tenantScoped.Use(authMiddleware.ResolveTenant())
		{
			tenantScoped.POST("/login", authController.Login)
			tenantScoped.POST("/refresh", authController.RefreshToken)
		}
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)

		// Student directory
		students := authenticated.Group("/students")
		{
			studentsRead := students.Group("")
			studentsRead.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
			{
				studentsRead.GET("", studentController.GetAllStudents)
				studentsRead.GET("/:id", studentController.GetStudentByID)
			}

			studentsAdmin := students.Group("")
			studentsAdmin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
			{
				studentsAdmin.POST("", studentController.CreateStudent)
				studentsAdmin.PUT("/:id", studentController.UpdateStudent)
				studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
				studentsAdmin.POST("/import", studentController.ImportStudents)
				studentsAdmin.GET("/export", studentController.ExportStudents)
			}
		}

		// Teacher directory (admin managed)
		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", teacherController.GetAllTeachers)
			teachers.GET("/:id", teacherController.GetTeacherByID)

			teachersAdmin := teachers.Group("")
			teachersAdmin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
			{
				teachersAdmin.POST("", teacherController.CreateTeacher)
				teachersAdmin.PUT("/:id", teacherController.UpdateTeacher)
				teachersAdmin.DELETE("/:id", teacherController.DeleteTeacher)
			}
		}

		// Reference data: anyone in the school can read, admins maintain
		authenticated.GET("/classes", academicController.GetAllClasses)
		authenticated.GET("/subjects", academicController.GetAllSubjects)
		authenticated.GET("/academic-years", academicController.GetAcademicYears)

		academicsAdmin := authenticated.Group("")
		academicsAdmin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
		{
			academicsAdmin.POST("/classes", academicController.CreateClass)
			academicsAdmin.POST("/subjects", academicController.CreateSubject)
		}

		// Attendance: teachers and admins mark, parents can read their child's rows
		attendance := authenticated.Group("/attendance")
		{
			attendanceWrite := attendance.Group("")
			attendanceWrite.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
			{
				attendanceWrite.POST("", attendanceController.MarkAttendance)
				attendanceWrite.GET("", attendanceController.GetAttendanceByDate)
			}

			attendanceRead := attendance.Group("")
			attendanceRead.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher, models.RoleParent))
			{
				attendanceRead.GET("/students/:studentId", attendanceController.GetStudentHistory)
				attendanceRead.GET("/students/:studentId/summary", attendanceController.GetStudentSummary)
			}
		}

		// Grades
		grades := authenticated.Group("/grades")
		{
			gradesWrite := grades.Group("")
			gradesWrite.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
			{
				gradesWrite.POST("", gradeController.RecordGrade)
			}

			gradesRead := grades.Group("")
			gradesRead.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher, models.RoleParent))
			{
				gradesRead.GET("/students/:studentId", gradeController.GetStudentGrades)
				gradesRead.GET("/students/:studentId/average", gradeController.GetStudentAverage)
			}
		}

		// Fees: accountants and admins manage, parents can read per-student views
		fees := authenticated.Group("/fees")
		{
			feesWrite := fees.Group("")
			feesWrite.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleAccountant))
			{
				feesWrite.POST("/structures", feeController.CreateFeeStructure)
				feesWrite.GET("/structures", feeController.GetFeeStructures)
				feesWrite.POST("/payments", feeController.RecordPayment)
			}

			feesRead := fees.Group("")
			feesRead.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleAccountant, models.RoleParent))
			{
				feesRead.GET("/students/:studentId/payments", feeController.GetStudentPayments)
				feesRead.GET("/students/:studentId/summary", feeController.GetStudentFeeSummary)
			}
		}

		// Notifications
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.GetMyNotifications)

			notificationsWrite := notifications.Group("")
			notificationsWrite.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
			{
				notificationsWrite.POST("", notificationController.CreateNotification)
			}
		}

		// Complaints: parents submit, admins handle
		complaints := authenticated.Group("/complaints")
		{
			complaintsParent := complaints.Group("")
			complaintsParent.Use(authMiddleware.RequireRoles(models.RoleParent))
			{
				complaintsParent.POST("", complaintController.CreateComplaint)
			}

			complaintsAdmin := complaints.Group("")
			complaintsAdmin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
			{
				complaintsAdmin.GET("", complaintController.GetAllComplaints)
				complaintsAdmin.GET("/:id", complaintController.GetComplaintByID)
				complaintsAdmin.PUT("/:id", complaintController.UpdateComplaint)
			}
		}

		// Dashboard and reporting
		dashboard := authenticated.Group("/dashboard")
		{
			dashboardAdmin := dashboard.Group("")
			dashboardAdmin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
			{
				dashboardAdmin.GET("", dashboardController.GetDashboard)
			}

			revenueRead := dashboard.Group("")
			revenueRead.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleAccountant))
			{
				revenueRead.GET("/revenue", dashboardController.GetRevenueReport)
			}
		}

		// Platform administration (super-admin only)
		platform := authenticated.Group("")
		platform.Use(authMiddleware.RequireRoles(models.RoleSuperAdmin))
		{
			schools := platform.Group("/schools")
			{
				schools.GET("", schoolController.GetAllSchools)
				schools.GET("/:id", schoolController.GetSchoolByID)
				schools.PUT("/:id", schoolController.UpdateSchool)
				schools.POST("/:id/suspend", schoolController.SuspendSchool)
			}

			billing := platform.Group("/billing")
			{
				billing.POST("", billingController.CreateBillingRecord)
				billing.GET("", billingController.GetBillingRecords)
				billing.GET("/:id", billingController.GetBillingRecordByID)
				billing.PUT("/:id/status", billingController.UpdateBillingStatus)
				billing.POST("/mark-overdue", billingController.MarkOverdueInvoices)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
