package tenancy

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/identity"
	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/kosmanager/backend/internal/domain/tenancy"
	"go.uber.org/zap"
)

const bulkStartDateLayout = "2006-01-02"

// BulkService handles bulk tenant intake, a pro-plan feature
type BulkService struct {
	userRepo identity.UserRepository
	roomRepo lodging.RoomRepository
	txScope  TransactionScope
	logger   *zap.Logger
}

// NewBulkService creates a new BulkService
func NewBulkService(
	userRepo identity.UserRepository,
	roomRepo lodging.RoomRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *BulkService {
	return &BulkService{
		userRepo: userRepo,
		roomRepo: roomRepo,
		txScope:  txScope,
		logger:   logger,
	}
}

// CheckIn processes intake rows independently: each row matches a room
// by number, validates, and commits tenant + room flip + first invoice
// in its own transaction. A failed row is reported and never aborts the
// batch. Rooms consumed by earlier rows are tracked so a later row
// cannot claim the same room.
func (s *BulkService) CheckIn(ctx context.Context, ownerID uuid.UUID, rows []BulkCheckInRow) (*BulkCheckInResult, error) {
	user, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !user.Plan.CanUseBulkUpload() {
		return nil, shared.NewDomainError("PLAN_LIMIT", "Bulk upload requires the pro plan")
	}

	if len(rows) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "No rows to process")
	}

	available, err := s.roomRepo.FindAvailableByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	consumed := make(map[uuid.UUID]bool)
	result := &BulkCheckInResult{Errors: make([]BulkRowError, 0)}

	for _, row := range rows {
		if err := s.processRow(ctx, available, consumed, row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, BulkRowError{Name: row.Name, Error: err.Error()})
			continue
		}
		result.Success++
	}

	s.logger.Info("bulk check-in finished",
		zap.String("owner_id", ownerID.String()),
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

func (s *BulkService) processRow(ctx context.Context, available []lodging.AvailableRoom, consumed map[uuid.UUID]bool, row BulkCheckInRow) error {
	room := matchRoom(available, consumed, row.RoomNumber)
	if room == nil {
		return shared.NewDomainError("NOT_FOUND", "Room not found or not available")
	}

	if err := tenancy.ValidateDueDate(row.DueDate); err != nil {
		return err
	}

	startDate, err := time.Parse(bulkStartDateLayout, row.StartDate)
	if err != nil {
		return shared.NewDomainError("INVALID_START_DATE", "Start date must be in YYYY-MM-DD format")
	}

	tenant, err := tenancy.NewTenant(room.ID, row.Name, row.PhoneNumber, startDate, row.DueDate)
	if err != nil {
		return err
	}

	invoice, err := tenancy.NewInvoice(tenant.ID, room.Price, tenancy.FirstInvoicePeriod(startDate, row.DueDate))
	if err != nil {
		return err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.RoomRepo().MarkOccupied(ctx, room.ID); err != nil {
			return err
		}
		if err := repos.TenantRepo().Save(ctx, tenant); err != nil {
			return err
		}
		return repos.InvoiceRepo().Save(ctx, invoice)
	})
	if err != nil {
		return err
	}

	consumed[room.ID] = true
	return nil
}

// matchRoom finds an available room by case-insensitive number, skipping
// rooms already taken by earlier rows in this batch.
func matchRoom(available []lodging.AvailableRoom, consumed map[uuid.UUID]bool, roomNumber string) *lodging.Room {
	want := strings.ToLower(strings.TrimSpace(roomNumber))
	for i := range available {
		if consumed[available[i].ID] {
			continue
		}
		if strings.ToLower(available[i].RoomNumber) == want {
			return &available[i].Room
		}
	}
	return nil
}
