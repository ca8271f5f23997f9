package lodging

import (
	"context"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/identity"
	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PropertyService handles property management for an owner
type PropertyService struct {
	propertyRepo lodging.PropertyRepository
	userRepo     identity.UserRepository
	logger       *zap.Logger
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo lodging.PropertyRepository, userRepo identity.UserRepository, logger *zap.Logger) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Create creates a new property, enforcing the plan limit
func (s *PropertyService) Create(ctx context.Context, ownerID uuid.UUID, req CreatePropertyRequest) (*PropertyResponse, error) {
	user, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	count, err := s.propertyRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !user.Plan.CanCreateProperty(int(count)) {
		return nil, shared.NewDomainError("PLAN_LIMIT", "Property limit reached for the current plan")
	}

	property, err := lodging.NewProperty(ownerID, req.Name, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, err
	}

	s.logger.Info("property created",
		zap.String("property_id", property.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	response := ToPropertyResponse(property)
	return &response, nil
}

// Get retrieves one property owned by the given user
func (s *PropertyService) Get(ctx context.Context, ownerID, propertyID uuid.UUID) (*PropertyResponse, error) {
	property, err := s.ownedProperty(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}

	response := ToPropertyResponse(property)
	return &response, nil
}

// List returns all properties of the owner
func (s *PropertyService) List(ctx context.Context, ownerID uuid.UUID) ([]PropertyResponse, error) {
	properties, err := s.propertyRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		responses = append(responses, ToPropertyResponse(&properties[i]))
	}
	return responses, nil
}

// Update changes a property's name and address
func (s *PropertyService) Update(ctx context.Context, ownerID, propertyID uuid.UUID, req UpdatePropertyRequest) (*PropertyResponse, error) {
	property, err := s.ownedProperty(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}

	if err := property.Update(req.Name, req.Address); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, err
	}

	response := ToPropertyResponse(property)
	return &response, nil
}

// Delete removes a property. Rooms, tenants and invoices under it are
// removed by the database cascade.
func (s *PropertyService) Delete(ctx context.Context, ownerID, propertyID uuid.UUID) error {
	property, err := s.ownedProperty(ctx, ownerID, propertyID)
	if err != nil {
		return err
	}

	if err := s.propertyRepo.Delete(ctx, property.ID); err != nil {
		return err
	}

	s.logger.Info("property deleted",
		zap.String("property_id", property.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	return nil
}

func (s *PropertyService) ownedProperty(ctx context.Context, ownerID, propertyID uuid.UUID) (*lodging.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsOwnedBy(ownerID) {
		return nil, shared.ErrForbidden
	}
	return property, nil
}
