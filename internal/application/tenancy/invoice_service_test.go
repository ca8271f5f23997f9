package tenancy

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/kosmanager/backend/internal/domain/tenancy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type invoiceFixture struct {
	invoiceRepo *MockInvoiceRepository
	tenantRepo  *MockTenantRepository
	service     *InvoiceService
}

func newInvoiceFixture() *invoiceFixture {
	f := &invoiceFixture{
		invoiceRepo: new(MockInvoiceRepository),
		tenantRepo:  new(MockTenantRepository),
	}
	f.service = NewInvoiceService(f.invoiceRepo, f.tenantRepo, zap.NewNop())
	return f
}

func TestInvoiceService_Create_NormalizesPeriodBeforeDedup(t *testing.T) {
	f := newInvoiceFixture()
	ownerID := uuid.New()
	tenantID := uuid.New()
	firstOfMonth := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	f.tenantRepo.On("OwnerOf", mock.Anything, tenantID).Return(ownerID, nil)
	f.invoiceRepo.On("ExistsByTenantAndPeriod", mock.Anything, tenantID, firstOfMonth).Return(false, nil)
	f.invoiceRepo.On("Save", mock.Anything, mock.AnythingOfType("*tenancy.Invoice")).Return(nil)

	resp, err := f.service.Create(context.Background(), ownerID, CreateInvoiceRequest{
		TenantID: tenantID,
		Amount:   1500000,
		Period:   time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, firstOfMonth, resp.Period)
	assert.Equal(t, string(tenancy.InvoiceStatusUnpaid), resp.Status)
}

func TestInvoiceService_Create_DuplicatePeriodRejectedRegardlessOfAmount(t *testing.T) {
	f := newInvoiceFixture()
	ownerID := uuid.New()
	tenantID := uuid.New()
	firstOfMonth := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	f.tenantRepo.On("OwnerOf", mock.Anything, tenantID).Return(ownerID, nil)
	f.invoiceRepo.On("ExistsByTenantAndPeriod", mock.Anything, tenantID, firstOfMonth).Return(true, nil)

	_, err := f.service.Create(context.Background(), ownerID, CreateInvoiceRequest{
		TenantID: tenantID,
		Amount:   999999999,
		Period:   time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC),
	})

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	f.invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInvoiceService_Create_OtherOwnerForbidden(t *testing.T) {
	f := newInvoiceFixture()
	tenantID := uuid.New()

	f.tenantRepo.On("OwnerOf", mock.Anything, tenantID).Return(uuid.New(), nil)

	_, err := f.service.Create(context.Background(), uuid.New(), CreateInvoiceRequest{
		TenantID: tenantID,
		Amount:   1500000,
		Period:   time.Now(),
	})

	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestInvoiceService_UpdateStatus_PaidAtFollowsStatus(t *testing.T) {
	f := newInvoiceFixture()
	ownerID := uuid.New()
	invoice, err := tenancy.NewInvoice(uuid.New(), 1500000, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	f.invoiceRepo.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	f.invoiceRepo.On("OwnerOf", mock.Anything, invoice.ID).Return(ownerID, nil)
	f.invoiceRepo.On("Save", mock.Anything, invoice).Return(nil)

	resp, err := f.service.UpdateStatus(context.Background(), ownerID, invoice.ID, "paid")
	assert.NoError(t, err)
	assert.Equal(t, "paid", resp.Status)
	assert.NotNil(t, resp.PaidAt)

	resp, err = f.service.UpdateStatus(context.Background(), ownerID, invoice.ID, "unpaid")
	assert.NoError(t, err)
	assert.Equal(t, "unpaid", resp.Status)
	assert.Nil(t, resp.PaidAt)
}

func TestInvoiceService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	f := newInvoiceFixture()
	ownerID := uuid.New()
	invoice, err := tenancy.NewInvoice(uuid.New(), 1500000, time.Now())
	assert.NoError(t, err)

	f.invoiceRepo.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	f.invoiceRepo.On("OwnerOf", mock.Anything, invoice.ID).Return(ownerID, nil)

	_, err = f.service.UpdateStatus(context.Background(), ownerID, invoice.ID, "cancelled")

	assert.Error(t, err)
	f.invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInvoiceService_ReminderLink(t *testing.T) {
	f := newInvoiceFixture()
	ownerID := uuid.New()
	invoice, err := tenancy.NewInvoice(uuid.New(), 1500000, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	listing := &tenancy.InvoiceListing{
		Invoice:      *invoice,
		TenantName:   "Siti Aminah",
		TenantPhone:  "081234567890",
		RoomNumber:   "A-101",
		PropertyName: "Kos Mawar",
	}

	f.invoiceRepo.On("OwnerOf", mock.Anything, invoice.ID).Return(ownerID, nil)
	f.invoiceRepo.On("FindListingByID", mock.Anything, invoice.ID).Return(listing, nil)

	resp, err := f.service.ReminderLink(context.Background(), ownerID, invoice.ID)

	assert.NoError(t, err)
	assert.Contains(t, resp.Link, "https://wa.me/6281234567890?text=")
	assert.Contains(t, resp.Link, "Siti+Aminah")
	assert.Contains(t, resp.Link, "Maret+2024")
}
