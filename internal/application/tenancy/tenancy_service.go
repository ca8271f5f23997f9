package tenancy

import (
	"context"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/kosmanager/backend/internal/domain/tenancy"
	"go.uber.org/zap"
)

// TenancyService handles the tenant lifecycle: check-in, check-out,
// deletion and listings
type TenancyService struct {
	tenantRepo   tenancy.TenantRepository
	invoiceRepo  tenancy.InvoiceRepository
	roomRepo     lodging.RoomRepository
	propertyRepo lodging.PropertyRepository
	txScope      TransactionScope
	logger       *zap.Logger
}

// NewTenancyService creates a new TenancyService
func NewTenancyService(
	tenantRepo tenancy.TenantRepository,
	invoiceRepo tenancy.InvoiceRepository,
	roomRepo lodging.RoomRepository,
	propertyRepo lodging.PropertyRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *TenancyService {
	return &TenancyService{
		tenantRepo:   tenantRepo,
		invoiceRepo:  invoiceRepo,
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
		txScope:      txScope,
		logger:       logger,
	}
}

// CheckIn moves a tenant into an available room. The tenant insert and
// the room status flip commit atomically; when two check-ins race for
// the same room, the conditional status update makes the loser fail.
// No invoice is created here; the first invoice is issued explicitly
// or through bulk intake.
func (s *TenancyService) CheckIn(ctx context.Context, ownerID uuid.UUID, req CheckInRequest) (*TenantResponse, error) {
	room, err := s.roomRepo.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	owner, err := s.roomRepo.OwnerOf(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	if owner != ownerID {
		return nil, shared.ErrForbidden
	}

	if !room.IsAvailable() {
		return nil, shared.NewDomainError("INVALID_STATE", "Room is not available")
	}

	tenant, err := tenancy.NewTenant(room.ID, req.Name, req.PhoneNumber, req.StartDate, req.DueDate)
	if err != nil {
		return nil, err
	}
	tenant.IDCardPhoto = req.IDCardPhoto

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.RoomRepo().MarkOccupied(ctx, room.ID); err != nil {
			return err
		}
		return repos.TenantRepo().Save(ctx, tenant)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tenant checked in",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("room_id", room.ID.String()),
	)

	response := ToTenantResponse(tenant)
	return &response, nil
}

// CheckOut deactivates a tenant and frees the room. Unpaid invoices
// are kept for collection.
func (s *TenancyService) CheckOut(ctx context.Context, ownerID, tenantID uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.ownedTenant(ctx, ownerID, tenantID)
	if err != nil {
		return nil, err
	}

	if err := tenant.CheckOut(); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.TenantRepo().Save(ctx, tenant); err != nil {
			return err
		}
		return repos.RoomRepo().MarkAvailable(ctx, tenant.RoomID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tenant checked out",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("room_id", tenant.RoomID.String()),
	)

	response := ToTenantResponse(tenant)
	return &response, nil
}

// Delete removes a tenant entirely. The room is freed when the tenant
// was still active; invoices go with the tenant via the cascade.
func (s *TenancyService) Delete(ctx context.Context, ownerID, tenantID uuid.UUID) error {
	tenant, err := s.ownedTenant(ctx, ownerID, tenantID)
	if err != nil {
		return err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if tenant.IsActive {
			if err := repos.RoomRepo().MarkAvailable(ctx, tenant.RoomID); err != nil {
				return err
			}
		}
		return repos.TenantRepo().Delete(ctx, tenant.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("tenant deleted",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	return nil
}

// List returns all tenants across the owner's properties, newest first
func (s *TenancyService) List(ctx context.Context, ownerID uuid.UUID) ([]TenantListingResponse, error) {
	listings, err := s.tenantRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]TenantListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, ToTenantListingResponse(&listings[i]))
	}
	return responses, nil
}

// ListActive returns active tenants with their room price, ordered by
// property name then room number
func (s *TenancyService) ListActive(ctx context.Context, ownerID uuid.UUID) ([]ActiveTenantResponse, error) {
	listings, err := s.tenantRepo.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]ActiveTenantResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, ActiveTenantResponse{
			TenantResponse: ToTenantResponse(&listings[i].Tenant),
			RoomNumber:     listings[i].RoomNumber,
			RoomPrice:      listings[i].RoomPrice,
			PropertyName:   listings[i].PropertyName,
		})
	}
	return responses, nil
}

// Get returns one tenant with room, property and invoice history
func (s *TenancyService) Get(ctx context.Context, ownerID, tenantID uuid.UUID) (*TenantDetailResponse, error) {
	tenant, err := s.ownedTenant(ctx, ownerID, tenantID)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByID(ctx, tenant.RoomID)
	if err != nil {
		return nil, err
	}
	property, err := s.propertyRepo.FindByID(ctx, room.PropertyID)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}

	invoiceResponses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		invoiceResponses = append(invoiceResponses, ToInvoiceResponse(&invoices[i]))
	}

	return &TenantDetailResponse{
		TenantListingResponse: TenantListingResponse{
			TenantResponse: ToTenantResponse(tenant),
			RoomNumber:     room.RoomNumber,
			PropertyName:   property.Name,
		},
		Invoices: invoiceResponses,
	}, nil
}

func (s *TenancyService) ownedTenant(ctx context.Context, ownerID, tenantID uuid.UUID) (*tenancy.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	owner, err := s.tenantRepo.OwnerOf(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if owner != ownerID {
		return nil, shared.ErrForbidden
	}

	return tenant, nil
}
