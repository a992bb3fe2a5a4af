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

type SparePartHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSparePartHandler(db *gorm.DB, log *zap.Logger) *SparePartHandler {
	return &SparePartHandler{db: db, log: log}
}

// --------- Requests ---------

type CreateSparePartRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Quantity      *int     `json:"quantity"`
	PurchasePrice *float64 `json:"purchasePrice"`
	SalePrice     *float64 `json:"salePrice"`
	MinimumStock  *int     `json:"minimumStock"`
}

type UpdateSparePartRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Quantity      *int     `json:"quantity,omitempty"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty"`
	SalePrice     *float64 `json:"salePrice,omitempty"`
	MinimumStock  *int     `json:"minimumStock,omitempty"`
}

func validatePartNumbers(quantity, minimumStock *int, purchase, sale *float64) (code, message string) {
	if quantity != nil && *quantity < 0 {
		return "invalid_quantity", "Quantity must be zero or positive."
	}
	if minimumStock != nil && *minimumStock < 0 {
		return "invalid_minimum_stock", "Minimum stock must be zero or positive."
	}
	if purchase != nil && *purchase < 0 {
		return "invalid_price", "Purchase price must be zero or positive."
	}
	if sale != nil && *sale < 0 {
		return "invalid_price", "Sale price must be zero or positive."
	}
	return "", ""
}

// --------- Handlers ---------

func (h *SparePartHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	// Low stock is derived, so the filter repeats the derivation in SQL.
	if c.Query("lowStock") == "true" {
		q = q.Where("quantity <= minimum_stock")
	}

	var parts []models.SparePart
	if err := q.
		Order("name ASC").
		Find(&parts).Error; err != nil {

		h.log.Error("list parts", zap.Error(err))
		httperr.Internal(c, "failed_to_list_parts", "Could not list spare parts.")
		return
	}

	httpresp.OK(c, parts)
}

func (h *SparePartHandler) Create(c *gin.Context) {
	var req CreateSparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Name is required.")
		return
	}

	if code, msg := validatePartNumbers(req.Quantity, req.MinimumStock, req.PurchasePrice, req.SalePrice); code != "" {
		httperr.BadRequest(c, code, msg)
		return
	}

	part := models.SparePart{
		Name:          req.Name,
		Description:   req.Description,
		Quantity:      0,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		MinimumStock:  1,
	}
	if req.Quantity != nil {
		part.Quantity = *req.Quantity
	}
	if req.MinimumStock != nil {
		part.MinimumStock = *req.MinimumStock
	}

	if err := h.db.Create(&part).Error; err != nil {
		h.log.Error("create part", zap.Error(err))
		httperr.Internal(c, "failed_to_create_part", "Could not create spare part.")
		return
	}

	httpresp.Created(c, part)
}

func (h *SparePartHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var part models.SparePart
	if err := h.db.First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "part_not_found", "Spare part not found.")
			return
		}
		h.log.Error("get part", zap.Error(err))
		httperr.Internal(c, "failed_to_get_part", "Could not fetch spare part.")
		return
	}

	var req UpdateSparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if code, msg := validatePartNumbers(req.Quantity, req.MinimumStock, req.PurchasePrice, req.SalePrice); code != "" {
		httperr.BadRequest(c, code, msg)
		return
	}

	if req.Name != nil {
		part.Name = *req.Name
	}
	if req.Description != nil {
		part.Description = *req.Description
	}
	if req.Quantity != nil {
		part.Quantity = *req.Quantity
	}
	if req.PurchasePrice != nil {
		part.PurchasePrice = req.PurchasePrice
	}
	if req.SalePrice != nil {
		part.SalePrice = req.SalePrice
	}
	if req.MinimumStock != nil {
		part.MinimumStock = *req.MinimumStock
	}

	if err := h.db.Save(&part).Error; err != nil {
		h.log.Error("update part", zap.Error(err))
		httperr.Internal(c, "failed_to_update_part", "Could not update spare part.")
		return
	}

	httpresp.OK(c, part)
}

func (h *SparePartHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.SparePart{}, "id = ?", id)
	if res.Error != nil {
		h.log.Error("delete part", zap.Error(res.Error))
		httperr.Internal(c, "failed_to_delete_part", "Could not delete spare part.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "part_not_found", "Spare part not found.")
		return
	}

	httpresp.Deleted(c)
}
