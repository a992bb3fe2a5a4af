package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tallerapp/workshop-manager/internal/audit"
	"github.com/tallerapp/workshop-manager/internal/handlers"
	infraRepo "github.com/tallerapp/workshop-manager/internal/infra/repository"
	ucAppointment "github.com/tallerapp/workshop-manager/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	reportAppointmentsUC := ucAppointment.NewReportAppointments(appointmentRepo)
	statsUC := ucAppointment.NewGetStats(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(db, log)
	vehicleHandler := handlers.NewVehicleHandler(db, log)
	jobHandler := handlers.NewJobHandler(db, log)
	sparePartHandler := handlers.NewSparePartHandler(db, log)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		getAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		log,
	)

	reportHandler := handlers.NewReportHandler(reportAppointmentsUC, log)
	statsHandler := handlers.NewStatsHandler(statsUC, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, log)

	// ======================================================
	// ROUTES
	// ======================================================

	r.GET("/clients", clientHandler.List)
	r.POST("/clients", clientHandler.Create)
	r.GET("/clients/:id", clientHandler.Get)
	r.PUT("/clients/:id", clientHandler.Update)
	r.DELETE("/clients/:id", clientHandler.Delete)

	r.GET("/vehicles", vehicleHandler.List)
	r.POST("/vehicles", vehicleHandler.Create)
	r.PUT("/vehicles/:id", vehicleHandler.Update)
	r.DELETE("/vehicles/:id", vehicleHandler.Delete)

	r.GET("/appointments", appointmentHandler.List)
	r.POST("/appointments", appointmentHandler.Create)
	r.GET("/appointments/:id", appointmentHandler.Get)
	r.PUT("/appointments/:id", appointmentHandler.Update)
	r.DELETE("/appointments/:id", appointmentHandler.Delete)

	r.POST("/appointments/:id/jobs", jobHandler.Create)
	r.DELETE("/appointments/:id/jobs", jobHandler.Delete)

	r.GET("/parts", sparePartHandler.List)
	r.POST("/parts", sparePartHandler.Create)
	r.PUT("/parts/:id", sparePartHandler.Update)
	r.DELETE("/parts/:id", sparePartHandler.Delete)

	r.GET("/stats", statsHandler.Get)

	r.GET("/reports", reportHandler.List)
	r.GET("/reports/export", reportHandler.Export)

	r.GET("/audit-logs", auditLogsHandler.List)
}
