package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kosmanager/backend/internal/application/lodging"
)

// CreateRoomRequest is the payload for adding a room to a property
type CreateRoomRequest struct {
	RoomNumber string   `json:"roomNumber" binding:"required,max=50"`
	Price      int64    `json:"price" binding:"required,min=100000"`
	Facilities []string `json:"facilities"`
}

// UpdateRoomRequest is the payload for updating a room
type UpdateRoomRequest struct {
	RoomNumber string   `json:"roomNumber" binding:"required,max=50"`
	Price      int64    `json:"price" binding:"required,min=100000"`
	Status     string   `json:"status" binding:"required,oneof=available occupied maintenance"`
	Facilities []string `json:"facilities"`
}

// RoomHandler handles room endpoints
type RoomHandler struct {
	BaseHandler
	roomService *lodging.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *lodging.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// Create adds a room to a property
func (h *RoomHandler) Create(c *gin.Context) {
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

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), userID, propertyID, lodging.CreateRoomRequest{
		RoomNumber: req.RoomNumber,
		Price:      req.Price,
		Facilities: req.Facilities,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, room)
}

// ListByProperty returns the rooms of one property
func (h *RoomHandler) ListByProperty(c *gin.Context) {
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

	rooms, err := h.roomService.ListByProperty(c.Request.Context(), userID, propertyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rooms)
}

// ListAvailable returns the owner's available rooms across all properties
func (h *RoomHandler) ListAvailable(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	rooms, err := h.roomService.ListAvailable(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rooms)
}

// Get returns one room
func (h *RoomHandler) Get(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	roomID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	room, err := h.roomService.Get(c.Request.Context(), userID, roomID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, room)
}

// Update changes a room's number, price, status and facilities
func (h *RoomHandler) Update(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	roomID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomService.Update(c.Request.Context(), userID, roomID, lodging.UpdateRoomRequest{
		RoomNumber: req.RoomNumber,
		Price:      req.Price,
		Status:     req.Status,
		Facilities: req.Facilities,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, room)
}

// Delete removes a room
func (h *RoomHandler) Delete(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	roomID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), userID, roomID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
