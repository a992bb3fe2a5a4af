package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/httpresp"
	ucAppointment "github.com/tallerapp/workshop-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	getUC    *ucAppointment.GetAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointments
	log      *zap.Logger
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	getUC *ucAppointment.GetAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime"`
	Description string `json:"description" binding:"required"`
	ClientID    string `json:"clientId" binding:"required"`
	VehicleID   string `json:"vehicleId" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Date        *string `json:"date,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	ClientID    *string `json:"clientId,omitempty"`
	VehicleID   *string `json:"vehicleId,omitempty"`
}

// respondError maps business codes onto HTTP statuses; anything
// unrecognized is a logged 500 with a generic message.
func (h *AppointmentHandler) respondError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "appointment_not_found":
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case "invalid_date":
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case "invalid_month":
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
	case "invalid_year":
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
	case "invalid_status":
		httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
	case "invalid_status_transition":
		httperr.BadRequest(c, "invalid_status_transition", "That status change is not allowed.")
	default:
		h.log.Error("appointment operation failed", zap.Error(err))
		httperr.Internal(c, "appointment_error", "Could not process appointment.")
	}
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields",
			"Date, start time, description, client and vehicle are required.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateInput{
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
		ClientID:    req.ClientID,
		VehicleID:   req.VehicleID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// List serves the calendar: by exact day, by month+year, or everything.
func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListQuery{
		Date:  c.Query("date"),
		Month: c.Query("month"),
		Year:  c.Query("year"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), ucAppointment.UpdateInput{
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
		Status:      req.Status,
		ClientID:    req.ClientID,
		VehicleID:   req.VehicleID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	httpresp.Deleted(c)
}
