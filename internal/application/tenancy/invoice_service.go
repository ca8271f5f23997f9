package tenancy

import (
	"context"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/kosmanager/backend/internal/domain/tenancy"
	"go.uber.org/zap"
)

// InvoiceService handles the monthly invoice lifecycle
type InvoiceService struct {
	invoiceRepo tenancy.InvoiceRepository
	tenantRepo  tenancy.TenantRepository
	logger      *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo tenancy.InvoiceRepository, tenantRepo tenancy.TenantRepository, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		tenantRepo:  tenantRepo,
		logger:      logger,
	}
}

// Create issues an unpaid invoice for one billing month. The period is
// normalized to the first of its month before the duplicate check, so
// two invoices for the same tenant can never land in the same month.
func (s *InvoiceService) Create(ctx context.Context, ownerID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	owner, err := s.tenantRepo.OwnerOf(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}
	if owner != ownerID {
		return nil, shared.ErrForbidden
	}

	invoice, err := tenancy.NewInvoice(req.TenantID, req.Amount, req.Period)
	if err != nil {
		return nil, err
	}

	exists, err := s.invoiceRepo.ExistsByTenantAndPeriod(ctx, req.TenantID, invoice.Period)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("INVALID_STATE", "Invoice for this period already exists")
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("tenant_id", req.TenantID.String()),
		zap.Time("period", invoice.Period),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// UpdateStatus marks an invoice paid or unpaid. PaidAt follows the
// status: set when paid, cleared when reverted to unpaid.
func (s *InvoiceService) UpdateStatus(ctx context.Context, ownerID, invoiceID uuid.UUID, status string) (*InvoiceResponse, error) {
	invoice, err := s.ownedInvoice(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.SetStatus(tenancy.InvoiceStatus(status)); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an invoice
func (s *InvoiceService) Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error {
	invoice, err := s.ownedInvoice(ctx, ownerID, invoiceID)
	if err != nil {
		return err
	}

	return s.invoiceRepo.Delete(ctx, invoice.ID)
}

// List returns all invoices across the owner's properties, newest
// created first, enriched with tenant, room and property details
func (s *InvoiceService) List(ctx context.Context, ownerID uuid.UUID) ([]InvoiceListingResponse, error) {
	listings, err := s.invoiceRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, ToInvoiceListingResponse(&listings[i]))
	}
	return responses, nil
}

// ReminderLink builds a WhatsApp link that opens a chat with the tenant
// holding a prefilled payment reminder
func (s *InvoiceService) ReminderLink(ctx context.Context, ownerID, invoiceID uuid.UUID) (*ReminderLinkResponse, error) {
	owner, err := s.invoiceRepo.OwnerOf(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if owner != ownerID {
		return nil, shared.ErrForbidden
	}

	listing, err := s.invoiceRepo.FindListingByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	return &ReminderLinkResponse{Link: BuildReminderLink(listing)}, nil
}

func (s *InvoiceService) ownedInvoice(ctx context.Context, ownerID, invoiceID uuid.UUID) (*tenancy.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	owner, err := s.invoiceRepo.OwnerOf(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if owner != ownerID {
		return nil, shared.ErrForbidden
	}

	return invoice, nil
}
