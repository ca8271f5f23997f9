package lodging

import (
	"context"

	"github.com/google/uuid"
	apptenancy "github.com/kosmanager/backend/internal/application/tenancy"
	"github.com/kosmanager/backend/internal/domain/identity"
	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RoomService handles room management for an owner
type RoomService struct {
	roomRepo     lodging.RoomRepository
	propertyRepo lodging.PropertyRepository
	userRepo     identity.UserRepository
	txScope      apptenancy.TransactionScope
	logger       *zap.Logger
}

// NewRoomService creates a new RoomService
func NewRoomService(
	roomRepo lodging.RoomRepository,
	propertyRepo lodging.PropertyRepository,
	userRepo identity.UserRepository,
	txScope apptenancy.TransactionScope,
	logger *zap.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		txScope:      txScope,
		logger:       logger,
	}
}

// Create adds a room to a property. The free plan caps rooms across all
// of the owner's properties; room numbers must be unique within the
// property. The insert and the property room counter move together.
func (s *RoomService) Create(ctx context.Context, ownerID, propertyID uuid.UUID, req CreateRoomRequest) (*RoomResponse, error) {
	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsOwnedBy(ownerID) {
		return nil, shared.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	count, err := s.roomRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !user.Plan.CanCreateRoom(int(count)) {
		return nil, shared.NewDomainError("PLAN_LIMIT", "Room limit reached for the current plan")
	}

	exists, err := s.roomRepo.ExistsByPropertyAndNumber(ctx, propertyID, req.RoomNumber, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Room number already exists in this property")
	}

	room, err := lodging.NewRoom(propertyID, req.RoomNumber, req.Price, req.Facilities)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos apptenancy.TransactionalRepositories) error {
		if err := repos.RoomRepo().Save(ctx, room); err != nil {
			return err
		}
		return repos.PropertyRepo().AdjustTotalRooms(ctx, propertyID, 1)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("room created",
		zap.String("room_id", room.ID.String()),
		zap.String("property_id", propertyID.String()),
	)

	response := ToRoomResponse(room)
	return &response, nil
}

// Get retrieves one room owned by the given user
func (s *RoomService) Get(ctx context.Context, ownerID, roomID uuid.UUID) (*RoomResponse, error) {
	room, err := s.ownedRoom(ctx, ownerID, roomID)
	if err != nil {
		return nil, err
	}

	response := ToRoomResponse(room)
	return &response, nil
}

// ListByProperty returns the rooms of one property
func (s *RoomService) ListByProperty(ctx context.Context, ownerID, propertyID uuid.UUID) ([]RoomResponse, error) {
	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsOwnedBy(ownerID) {
		return nil, shared.ErrForbidden
	}

	rooms, err := s.roomRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	responses := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, ToRoomResponse(&rooms[i]))
	}
	return responses, nil
}

// ListAvailable returns the owner's available rooms across all properties
func (s *RoomService) ListAvailable(ctx context.Context, ownerID uuid.UUID) ([]AvailableRoomResponse, error) {
	rooms, err := s.roomRepo.FindAvailableByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]AvailableRoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, AvailableRoomResponse{
			RoomResponse: ToRoomResponse(&rooms[i].Room),
			PropertyName: rooms[i].PropertyName,
		})
	}
	return responses, nil
}

// Update changes a room's number, price, status and facilities
func (s *RoomService) Update(ctx context.Context, ownerID, roomID uuid.UUID, req UpdateRoomRequest) (*RoomResponse, error) {
	room, err := s.ownedRoom(ctx, ownerID, roomID)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != room.RoomNumber {
		exists, err := s.roomRepo.ExistsByPropertyAndNumber(ctx, room.PropertyID, req.RoomNumber, room.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Room number already exists in this property")
		}
	}

	if err := room.Update(req.RoomNumber, req.Price, lodging.RoomStatus(req.Status), req.Facilities); err != nil {
		return nil, err
	}

	if err := s.roomRepo.Save(ctx, room); err != nil {
		return nil, err
	}

	response := ToRoomResponse(room)
	return &response, nil
}

// Delete removes a room and decrements the property counter. Occupied
// rooms cannot be deleted; the tenant must check out first.
func (s *RoomService) Delete(ctx context.Context, ownerID, roomID uuid.UUID) error {
	room, err := s.ownedRoom(ctx, ownerID, roomID)
	if err != nil {
		return err
	}

	if room.IsOccupied() {
		return shared.NewDomainError("INVALID_STATE", "Cannot delete an occupied room")
	}

	err = s.txScope.Execute(ctx, func(repos apptenancy.TransactionalRepositories) error {
		if err := repos.RoomRepo().Delete(ctx, room.ID); err != nil {
			return err
		}
		return repos.PropertyRepo().AdjustTotalRooms(ctx, room.PropertyID, -1)
	})
	if err != nil {
		return err
	}

	s.logger.Info("room deleted",
		zap.String("room_id", room.ID.String()),
		zap.String("property_id", room.PropertyID.String()),
	)

	return nil
}

func (s *RoomService) ownedRoom(ctx context.Context, ownerID, roomID uuid.UUID) (*lodging.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	owner, err := s.roomRepo.OwnerOf(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if owner != ownerID {
		return nil, shared.ErrForbidden
	}

	return room, nil
}
