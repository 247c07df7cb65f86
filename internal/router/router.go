package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "leskita/docs"
	"leskita/internal/domain"
	"leskita/internal/handler"
	"leskita/internal/middleware"
	"leskita/internal/service"
)

// Handlers bundles every HTTP handler wired into the engine.
type Handlers struct {
	Auth       *handler.AuthHandler
	Tenant     *handler.TenantHandler
	User       *handler.UserHandler
	Student    *handler.StudentHandler
	Payment    *handler.PaymentHandler
	Schedule   *handler.ScheduleHandler
	LessonNote *handler.LessonNoteHandler
	Material   *handler.MaterialHandler
	Report     *handler.ReportHandler
	Export     *handler.ExportHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	// Protected routes - require valid JWT and an active tenant membership
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.TenantGuard())

	protected.GET("/auth/me", h.Auth.Me)
	protected.GET("/tenants/me", h.Tenant.Me)

	// Student management
	students := protected.Group("/students")
	students.POST("", h.Student.Create)
	students.GET("", h.Student.List)
	students.GET("/:id", h.Student.GetByID)
	students.PUT("/:id", h.Student.Update)
	students.DELETE("/:id", h.Student.Delete)

	// Payment tracking
	payments := protected.Group("/payments")
	payments.POST("", h.Payment.Create)
	payments.GET("", h.Payment.List)
	payments.GET("/:id", h.Payment.GetByID)
	payments.PUT("/:id", h.Payment.Update)
	payments.DELETE("/:id", h.Payment.Delete)
	payments.POST("/:id/remind", h.Payment.Remind)

	// Session scheduling
	schedules := protected.Group("/schedules")
	schedules.POST("", h.Schedule.Create)
	schedules.GET("", h.Schedule.List)
	schedules.GET("/:id", h.Schedule.GetByID)
	schedules.PUT("/:id", h.Schedule.Update)
	schedules.DELETE("/:id", h.Schedule.Delete)

	// Lesson notes
	notes := protected.Group("/lesson-notes")
	notes.POST("", h.LessonNote.Create)
	notes.GET("", h.LessonNote.List)
	notes.GET("/:id", h.LessonNote.GetByID)
	notes.PUT("/:id", h.LessonNote.Update)
	notes.DELETE("/:id", h.LessonNote.Delete)

	// Learning materials
	materials := protected.Group("/materials")
	materials.POST("", h.Material.Upload)
	materials.GET("", h.Material.List)
	materials.GET("/:id", h.Material.GetByID)
	materials.GET("/:id/download", h.Material.Download)
	materials.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Material.Delete)

	// Reports and dashboard
	reports := protected.Group("/reports")
	reports.GET("/overview", h.Report.Overview)
	reports.GET("/top-subjects", h.Report.TopSubjects)
	reports.GET("/monthly-trend", h.Report.MonthlyTrend)
	protected.GET("/dashboard", h.Report.Dashboard)

	// Payment exports
	exports := protected.Group("/exports/payments")
	exports.GET("/csv", h.Export.CSV)
	exports.GET("/xlsx", h.Export.XLSX)
	exports.GET("/print", h.Export.Print)

	// User management (tenant-scoped)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Admin routes - tenant management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/tenants", h.Tenant.Create)
	admin.GET("/tenants", h.Tenant.List)
	admin.GET("/tenants/:id", h.Tenant.GetByID)
	admin.PUT("/tenants/:id", h.Tenant.Update)
	admin.DELETE("/tenants/:id", h.Tenant.Delete)

	return r
}
