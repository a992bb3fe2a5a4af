package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tallerapp/workshop-manager/internal/dates"
	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/models"
)

// AuditLogsHandler serves the operational log: who-did-what entries
// written asynchronously by the audit dispatcher.
type AuditLogsHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if fromStr != "" {
		if from, err := dates.ParseDay(fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}
	if toStr != "" {
		if to, err := dates.ParseDay(toStr); err == nil {
			q = q.Where("created_at <= ?", dates.EndOfDay(to))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		h.log.Error("count audit logs", zap.Error(err))
		httperr.Internal(c, "audit_count_failed", "Could not count audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		h.log.Error("list audit logs", zap.Error(err))
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
