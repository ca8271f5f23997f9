package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kosmanager/backend/internal/application/lodging"
)

// PropertyRequest is the payload for creating or updating a property
type PropertyRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=200"`
	Address string `json:"address" binding:"required,min=5,max=500"`
}

// PropertyHandler handles property endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService *lodging.PropertyService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *lodging.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create adds a property for the authenticated owner
func (h *PropertyHandler) Create(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), userID, lodging.CreatePropertyRequest{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, property)
}

// List returns all properties of the authenticated owner
func (h *PropertyHandler) List(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	properties, err := h.propertyService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, properties)
}

// Get returns one property
func (h *PropertyHandler) Get(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	propertyID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	property, err := h.propertyService.Get(c.Request.Context(), userID, propertyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// Update changes a property's name and address
func (h *PropertyHandler) Update(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	propertyID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), userID, propertyID, lodging.UpdatePropertyRequest{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// Delete removes a property and everything under it
func (h *PropertyHandler) Delete(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	propertyID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), userID, propertyID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
