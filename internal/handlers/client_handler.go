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

type ClientHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewClientHandler(db *gorm.DB, log *zap.Logger) *ClientHandler {
	return &ClientHandler{db: db, log: log}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

// --------- Handlers ---------

// List returns every client ordered by name, with its vehicles and the
// number of appointments it has accumulated.
func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.
		Preload("Vehicles").
		Order("name ASC").
		Find(&clients).Error; err != nil {

		h.log.Error("list clients", zap.Error(err))
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	type clientCount struct {
		ClientID string
		Count    int64
	}
	var counts []clientCount
	if err := h.db.
		Model(&models.Appointment{}).
		Select("client_id, COUNT(*) AS count").
		Group("client_id").
		Scan(&counts).Error; err != nil {

		h.log.Error("count client appointments", zap.Error(err))
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	byClient := make(map[string]int64, len(counts))
	for _, cc := range counts {
		byClient[cc.ClientID] = cc.Count
	}
	for i := range clients {
		clients[i].AppointmentCount = byClient[clients[i].ID]
	}

	httpresp.OK(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.
		Preload("Vehicles").
		First(&client, "id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		h.log.Error("get client", zap.Error(err))
		httperr.Internal(c, "failed_to_get_client", "Could not fetch client.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Name and phone are required.")
		return
	}

	client := models.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := h.db.Create(&client).Error; err != nil {
		h.log.Error("create client", zap.Error(err))
		httperr.Internal(c, "failed_to_create_client", "Could not create client.")
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		h.log.Error("get client", zap.Error(err))
		httperr.Internal(c, "failed_to_get_client", "Could not fetch client.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}

	if err := h.db.Save(&client).Error; err != nil {
		h.log.Error("update client", zap.Error(err))
		httperr.Internal(c, "failed_to_update_client", "Could not update client.")
		return
	}

	httpresp.OK(c, client)
}

// Delete removes the client; vehicles and appointments cascade at the
// database level.
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Client{}, "id = ?", id)
	if res.Error != nil {
		h.log.Error("delete client", zap.Error(res.Error))
		httperr.Internal(c, "failed_to_delete_client", "Could not delete client.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	httpresp.Deleted(c)
}
