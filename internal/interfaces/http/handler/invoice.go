package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/application/tenancy"
)

const periodLayout = "2006-01"

// CreateInvoiceRequest is the payload for billing a tenant for one month
type CreateInvoiceRequest struct {
	TenantID string `json:"tenantId" binding:"required,uuid"`
	Amount   int64  `json:"amount" binding:"required,min=1"`
	Period   string `json:"period" binding:"required"`
}

// UpdateInvoiceStatusRequest is the payload for marking an invoice paid or unpaid
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid unpaid"`
}

// InvoiceHandler handles invoice endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *tenancy.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *tenancy.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// parsePeriod accepts a billing month as YYYY-MM, or a full date for
// callers that send the due day along.
func parsePeriod(raw string) (time.Time, error) {
	if period, err := time.Parse(periodLayout, raw); err == nil {
		return period, nil
	}
	return time.Parse(dateLayout, raw)
}

// Create issues an unpaid invoice for one billing month
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	period, err := parsePeriod(req.Period)
	if err != nil {
		h.BadRequest(c, "Period must be in YYYY-MM format")
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), userID, tenancy.CreateInvoiceRequest{
		TenantID: tenantID,
		Amount:   req.Amount,
		Period:   period,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// List returns all invoices across the owner's properties
func (h *InvoiceHandler) List(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoices)
}

// UpdateStatus marks an invoice paid or unpaid
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	invoiceID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), userID, invoiceID, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Delete removes an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	invoiceID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), userID, invoiceID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Reminder returns a WhatsApp link with a prefilled payment reminder
func (h *InvoiceHandler) Reminder(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	invoiceID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	link, err := h.invoiceService.ReminderLink(c.Request.Context(), userID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, link)
}
