package guestbooking

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"tripmarket/internal/domain/booking"
	"tripmarket/internal/domain/catalog"
)

type MockProductFinder struct {
	mock.Mock
}

func (m *MockProductFinder) GetByID(ctx context.Context, id int64) (*catalog.Sightseeing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Sightseeing), args.Error(1)
}

func setupTestService(t *testing.T) (*Service, *MockProductFinder) {
	t.Helper()
	dsn := fmt.Sprintf("file:guestbooking_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&SightseeingBooking{}, &AdditionalGuest{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	products := new(MockProductFinder)
	return NewService(NewRepository(db), products), products
}

func offer(v float64) *float64 { return &v }

func product(id int64, price float64, offerPrice *float64) *catalog.Sightseeing {
	return &catalog.Sightseeing{
		ID:         id,
		Name:       "Old Town Walking Tour",
		Price:      price,
		OfferPrice: offerPrice,
		Images:     []string{"img-1.jpg"},
	}
}

func createReq(pax int, guests int) *CreateRequest {
	extra := make([]GuestInput, 0, guests)
	for i := 0; i < guests; i++ {
		extra = append(extra, GuestInput{
			Name:           fmt.Sprintf("Guest %d", i+1),
			PassportNumber: fmt.Sprintf("P%04d", i+1),
			Email:          "dropped@example.com",
		})
	}
	return &CreateRequest{
		SightseeingID: 1,
		DateOfTravel:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		NumberOfPax:   pax,
		LeadGuest: LeadGuestInput{
			Name:           "Lead Guest",
			Email:          "lead@example.com",
			Phone:          "+351000000",
			PassportNumber: "P0000",
			PanNumber:      "ABCDE1234F",
		},
		AdditionalGuests: extra,
	}
}

func TestCreateValidatesPaxCount(t *testing.T) {
	svc, products := setupTestService(t)
	ctx := context.Background()
	products.On("GetByID", mock.Anything, int64(1)).Return(product(1, 100, nil), nil)

	_, err := svc.Create(ctx, 7, createReq(3, 1))
	assert.ErrorIs(t, err, ErrPaxMismatch)

	_, err = svc.Create(ctx, 7, createReq(3, 3))
	assert.ErrorIs(t, err, ErrPaxMismatch)

	res, err := svc.Create(ctx, 7, createReq(3, 2))
	assert.NoError(t, err)
	assert.Equal(t, 3, res.NumberOfPax)
	assert.Len(t, res.AdditionalGuests, 2)
}

func TestCreateUsesOfferPriceWhenPresent(t *testing.T) {
	svc, products := setupTestService(t)
	products.On("GetByID", mock.Anything, int64(1)).Return(product(1, 100, offer(80)), nil)

	res, err := svc.Create(context.Background(), 7, createReq(2, 1))
	assert.NoError(t, err)
	assert.Equal(t, 160.0, res.TotalAmount)
	assert.Equal(t, "Old Town Walking Tour", res.SightseeingName)
	assert.NotNil(t, res.Sightseeing)
	assert.Equal(t, 100.0, res.Sightseeing.Price)
}

func TestCreateFallsBackToBasePrice(t *testing.T) {
	svc, products := setupTestService(t)
	products.On("GetByID", mock.Anything, int64(1)).Return(product(1, 100, nil), nil)

	res, err := svc.Create(context.Background(), 7, createReq(2, 1))
	assert.NoError(t, err)
	assert.Equal(t, 200.0, res.TotalAmount)
}

func TestCreateFailsWhenProductMissing(t *testing.T) {
	svc, products := setupTestService(t)
	products.On("GetByID", mock.Anything, int64(1)).Return(nil, catalog.ErrNotFound)

	_, err := svc.Create(context.Background(), 7, createReq(2, 1))
	assert.ErrorIs(t, err, ErrSightseeingNotFound)
}

func TestCreateDropsExtraGuestFieldsAndSetsReference(t *testing.T) {
	svc, products := setupTestService(t)
	products.On("GetByID", mock.Anything, int64(1)).Return(product(1, 50, nil), nil)

	res, err := svc.Create(context.Background(), 7, createReq(2, 1))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.BookingReference, "STB-"))
	assert.Equal(t, booking.StatusPending, res.Status)
	assert.Equal(t, "Guest 1", res.AdditionalGuests[0].Name)
	assert.Equal(t, "P0001", res.AdditionalGuests[0].PassportNumber)
}

func TestUpdateStatusRejectsUnknownValues(t *testing.T) {
	svc, products := setupTestService(t)
	ctx := context.Background()
	products.On("GetByID", mock.Anything, int64(1)).Return(product(1, 50, nil), nil)

	res, err := svc.Create(ctx, 7, createReq(1, 0))
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, res.ID, "completed")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	got, err := svc.GetByID(ctx, res.ID, 7, "agent")
	assert.NoError(t, err)
	assert.Equal(t, booking.StatusPending, got.Status)

	updated, err := svc.UpdateStatus(ctx, res.ID, "confirmed")
	assert.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, updated.Status)
}

func TestDeleteRequiresOwnerOrAdmin(t *testing.T) {
	svc, products := setupTestService(t)
	ctx := context.Background()
	products.On("GetByID", mock.Anything, int64(1)).Return(product(1, 50, nil), nil)

	res, err := svc.Create(ctx, 7, createReq(1, 0))
	assert.NoError(t, err)

	err = svc.Delete(ctx, res.ID, 99, "sales")
	assert.ErrorIs(t, err, ErrForbidden)

	// the booking survives the rejected delete
	_, err = svc.GetByID(ctx, res.ID, 7, "agent")
	assert.NoError(t, err)

	err = svc.Delete(ctx, res.ID, 99, "admin")
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, res.ID, 7, "agent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDChecksOwnership(t *testing.T) {
	svc, products := setupTestService(t)
	ctx := context.Background()
	products.On("GetByID", mock.Anything, int64(1)).Return(product(1, 50, nil), nil)

	res, err := svc.Create(ctx, 7, createReq(1, 0))
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, res.ID, 99, "agent")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetByID(ctx, res.ID, 99, "operations")
	assert.NoError(t, err)
}

func TestSalesDefaultListingExcludesCancelled(t *testing.T) {
	svc, products := setupTestService(t)
	ctx := context.Background()
	products.On("GetByID", mock.Anything, int64(1)).Return(product(1, 50, nil), nil)

	first, err := svc.Create(ctx, 7, createReq(1, 0))
	assert.NoError(t, err)
	second, err := svc.Create(ctx, 8, createReq(1, 0))
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, second.ID, "cancelled")
	assert.NoError(t, err)

	salesView, err := svc.ListAll(ctx, "sales", "")
	assert.NoError(t, err)
	assert.Len(t, salesView, 1)
	assert.Equal(t, first.ID, salesView[0].ID)

	// an explicit filter still reaches cancelled bookings
	cancelled, err := svc.ListAll(ctx, "sales", "cancelled")
	assert.NoError(t, err)
	assert.Len(t, cancelled, 1)

	opsView, err := svc.ListAll(ctx, "operations", "")
	assert.NoError(t, err)
	assert.Len(t, opsView, 2)

	_, err = svc.ListAll(ctx, "operations", "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestVoucherOnlyForConfirmedBookings(t *testing.T) {
	svc, products := setupTestService(t)
	ctx := context.Background()
	products.On("GetByID", mock.Anything, int64(1)).Return(product(1, 50, nil), nil)

	res, err := svc.Create(ctx, 7, createReq(2, 1))
	assert.NoError(t, err)

	_, err = svc.Voucher(ctx, res.ID, 7, "agent")
	assert.ErrorIs(t, err, ErrVoucherNotConfirmed)

	_, err = svc.UpdateStatus(ctx, res.ID, "confirmed")
	assert.NoError(t, err)

	pdf, err := svc.Voucher(ctx, res.ID, 7, "agent")
	assert.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.True(t, strings.HasPrefix(string(pdf[:4]), "%PDF"))
}

func TestListMineIsOwnerScoped(t *testing.T) {
	svc, products := setupTestService(t)
	ctx := context.Background()
	products.On("GetByID", mock.Anything, int64(1)).Return(product(1, 50, nil), nil)

	_, err := svc.Create(ctx, 7, createReq(1, 0))
	assert.NoError(t, err)
	_, err = svc.Create(ctx, 8, createReq(1, 0))
	assert.NoError(t, err)

	mine, err := svc.ListMine(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, int64(7), mine[0].UserID)

	none, err := svc.ListMine(ctx, 12)
	assert.NoError(t, err)
	assert.Len(t, none, 0)
}
