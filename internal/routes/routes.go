package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/onechair/booking/internal/audit"
	"github.com/onechair/booking/internal/config"
	"github.com/onechair/booking/internal/handlers"
	infraRepo "github.com/onechair/booking/internal/infra/repository"
	"github.com/onechair/booking/internal/middleware"
	"github.com/onechair/booking/internal/timezone"
	ucAppointment "github.com/onechair/booking/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New()
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// All engines compare naive wall-clock time read in the shop's one
	// configured zone.
	now := func() time.Time {
		return timezone.NaiveNowIn(cfg.Timezone)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	scheduleUC := ucAppointment.NewGetSchedule(appointmentRepo, now)
	bookUC := ucAppointment.NewBook(appointmentRepo, auditDispatcher, now)
	cancelOwnUC := ucAppointment.NewCancelOwn(appointmentRepo, auditDispatcher)

	dashboardUC := ucAppointment.NewGetDashboard(appointmentRepo, now)
	cancelByIDUC := ucAppointment.NewCancelByID(appointmentRepo, auditDispatcher)
	blockUC := ucAppointment.NewBlockSlot(appointmentRepo, auditDispatcher, cfg.BlockedSlotLabel)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)
	publicHandler := handlers.NewPublicHandler(scheduleUC, bookUC, cancelOwnUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, cancelByIDUC, blockUC)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/schedule", publicHandler.Schedule)
		api.POST("/appointments", publicHandler.Book)
		api.POST("/appointments/cancel", publicHandler.CancelOwn)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(cfg))
		{
			admin.GET("/dashboard", dashboardHandler.Dashboard)
			admin.POST("/appointments/:id/cancel", dashboardHandler.Cancel)
			admin.POST("/blocks", dashboardHandler.Block)
		}
	}
}
