package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/httpresp"
	"github.com/tallerapp/workshop-manager/internal/models"
)

type JobHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewJobHandler(db *gorm.DB, log *zap.Logger) *JobHandler {
	return &JobHandler{db: db, log: log}
}

// --------- Requests ---------

type CreateJobRequest struct {
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

// --------- Handlers ---------

// Create adds a line-item under an appointment. Price must be a
// non-negative number; there is no silent coercion.
func (h *JobHandler) Create(c *gin.Context) {
	appointmentID := c.Param("id")

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Description and price are required.")
		return
	}

	if *req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Price must be zero or positive.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		h.log.Error("get appointment for job", zap.Error(err))
		httperr.Internal(c, "failed_to_create_job", "Could not create job.")
		return
	}

	job := models.Job{
		Description:   req.Description,
		Price:         *req.Price,
		AppointmentID: ap.ID,
	}

	if err := h.db.Create(&job).Error; err != nil {
		h.log.Error("create job", zap.Error(err))
		httperr.Internal(c, "failed_to_create_job", "Could not create job.")
		return
	}

	httpresp.Created(c, job)
}

// Delete removes a line-item identified by the jobId query parameter,
// scoped to the appointment in the path.
func (h *JobHandler) Delete(c *gin.Context) {
	appointmentID := c.Param("id")

	jobID := c.Query("jobId")
	if jobID == "" {
		httperr.BadRequest(c, "missing_job_id", "jobId is required.")
		return
	}

	res := h.db.Delete(&models.Job{}, "id = ? AND appointment_id = ?", jobID, appointmentID)
	if res.Error != nil {
		h.log.Error("delete job", zap.Error(res.Error))
		httperr.Internal(c, "failed_to_delete_job", "Could not delete job.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "job_not_found", "Job not found.")
		return
	}

	httpresp.Deleted(c)
}
