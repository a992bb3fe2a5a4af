package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/httpresp"
	"github.com/tallerapp/workshop-manager/internal/models"
	"github.com/tallerapp/workshop-manager/internal/validators"
)

type VehicleHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewVehicleHandler(db *gorm.DB, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{db: db, log: log}
}

// --------- Requests ---------

type CreateVehicleRequest struct {
	Plate    string `json:"plate" binding:"required"`
	Make     string `json:"make" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Year     *int   `json:"year"`
	Color    string `json:"color"`
	ClientID string `json:"clientId" binding:"required"`
}

type UpdateVehicleRequest struct {
	Plate    *string `json:"plate,omitempty"`
	Make     *string `json:"make,omitempty"`
	Model    *string `json:"model,omitempty"`
	Year     *int    `json:"year,omitempty"`
	Color    *string `json:"color,omitempty"`
	ClientID *string `json:"clientId,omitempty"`
}

// --------- Handlers ---------

func (h *VehicleHandler) List(c *gin.Context) {
	clientID := c.Query("clientId")

	q := h.db.Preload("Client")
	if clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var vehicles []models.Vehicle
	if err := q.
		Order("plate ASC").
		Find(&vehicles).Error; err != nil {

		h.log.Error("list vehicles", zap.Error(err))
		httperr.Internal(c, "failed_to_list_vehicles", "Could not list vehicles.")
		return
	}

	httpresp.OK(c, vehicles)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Plate, make, model and client are required.")
		return
	}

	vehicle := models.Vehicle{
		Plate:    validators.NormalizePlate(req.Plate),
		Make:     req.Make,
		Model:    req.Model,
		Year:     req.Year,
		Color:    req.Color,
		ClientID: req.ClientID,
	}

	if err := h.db.Create(&vehicle).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "duplicate_plate", "A vehicle with that plate already exists.")
			return
		}
		h.log.Error("create vehicle", zap.Error(err))
		httperr.Internal(c, "failed_to_create_vehicle", "Could not create vehicle.")
		return
	}

	if err := h.db.Preload("Client").First(&vehicle, "id = ?", vehicle.ID).Error; err != nil {
		h.log.Error("reload vehicle", zap.Error(err))
		httperr.Internal(c, "failed_to_create_vehicle", "Could not create vehicle.")
		return
	}

	httpresp.Created(c, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := h.db.First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
			return
		}
		h.log.Error("get vehicle", zap.Error(err))
		httperr.Internal(c, "failed_to_get_vehicle", "Could not fetch vehicle.")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Plate != nil {
		vehicle.Plate = validators.NormalizePlate(*req.Plate)
	}
	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = req.Year
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.ClientID != nil {
		vehicle.ClientID = *req.ClientID
	}

	if err := h.db.Save(&vehicle).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "duplicate_plate", "A vehicle with that plate already exists.")
			return
		}
		h.log.Error("update vehicle", zap.Error(err))
		httperr.Internal(c, "failed_to_update_vehicle", "Could not update vehicle.")
		return
	}

	httpresp.OK(c, vehicle)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		h.log.Error("delete vehicle", zap.Error(res.Error))
		httperr.Internal(c, "failed_to_delete_vehicle", "Could not delete vehicle.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
		return
	}

	httpresp.Deleted(c)
}
