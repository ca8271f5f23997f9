package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/application/tenancy"
)

const dateLayout = "2006-01-02"

// CheckInRequest is the payload for checking a tenant into a room
type CheckInRequest struct {
	RoomID      string `json:"roomId" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,min=2,max=200"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=8,max=20"`
	IDCardPhoto string `json:"idCardPhoto"`
	StartDate   string `json:"startDate" binding:"required"`
	DueDate     int    `json:"dueDate" binding:"required,min=1,max=31"`
}

// BulkCheckInRequest is the payload for bulk tenant intake
type BulkCheckInRequest struct {
	Tenants []tenancy.BulkCheckInRow `json:"tenants" binding:"required"`
}

// TenantHandler handles tenant lifecycle endpoints
type TenantHandler struct {
	BaseHandler
	tenancyService *tenancy.TenancyService
	bulkService    *tenancy.BulkService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenancyService *tenancy.TenancyService, bulkService *tenancy.BulkService) *TenantHandler {
	return &TenantHandler{
		tenancyService: tenancyService,
		bulkService:    bulkService,
	}
}

// CheckIn moves a tenant into an available room
func (h *TenantHandler) CheckIn(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		h.BadRequest(c, "Start date must be in YYYY-MM-DD format")
		return
	}

	tenant, err := h.tenancyService.CheckIn(c.Request.Context(), userID, tenancy.CheckInRequest{
		RoomID:      roomID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		IDCardPhoto: req.IDCardPhoto,
		StartDate:   startDate,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tenant)
}

// BulkCheckIn processes a batch of intake rows, pro plan only
func (h *TenantHandler) BulkCheckIn(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req BulkCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.bulkService.CheckIn(c.Request.Context(), userID, req.Tenants)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns all tenants across the owner's properties
func (h *TenantHandler) List(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tenants, err := h.tenancyService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenants)
}

// ListActive returns active tenants with their room price
func (h *TenantHandler) ListActive(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tenants, err := h.tenancyService.ListActive(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenants)
}

// Get returns one tenant with room, property and invoice history
func (h *TenantHandler) Get(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tenantID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.tenancyService.Get(c.Request.Context(), userID, tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// CheckOut deactivates a tenant and frees the room
func (h *TenantHandler) CheckOut(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tenantID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.tenancyService.CheckOut(c.Request.Context(), userID, tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// Delete removes a tenant and their invoices
func (h *TenantHandler) Delete(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tenantID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	if err := h.tenancyService.Delete(c.Request.Context(), userID, tenantID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
