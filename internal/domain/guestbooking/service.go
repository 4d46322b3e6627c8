package guestbooking

import (
	"context"
	"errors"
	"math"

	"tripmarket/internal/domain/auth"
	"tripmarket/internal/domain/booking"
	"tripmarket/internal/domain/catalog"
)

// ProductFinder is the slice of the catalog the workflow needs.
type ProductFinder interface {
	GetByID(ctx context.Context, id int64) (*catalog.Sightseeing, error)
}

type Service struct {
	repo     *Repository
	products ProductFinder
}

func NewService(repo *Repository, products ProductFinder) *Service {
	return &Service{repo: repo, products: products}
}

// Create validates the guest list, prices the booking off the referenced
// product and persists it with a snapshot of the product name.
func (s *Service) Create(ctx context.Context, userID int64, req *CreateRequest) (*BookingResponse, error) {
	if req.NumberOfPax != len(req.AdditionalGuests)+1 {
		return nil, ErrPaxMismatch
	}

	product, err := s.products.GetByID(ctx, req.SightseeingID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrSightseeingNotFound
		}
		return nil, err
	}

	unitPrice := product.UnitPrice()
	total := math.Round(unitPrice*float64(req.NumberOfPax)*100) / 100

	guests := make([]AdditionalGuest, 0, len(req.AdditionalGuests))
	for _, g := range req.AdditionalGuests {
		guests = append(guests, AdditionalGuest{
			Name:           g.Name,
			PassportNumber: g.PassportNumber,
		})
	}

	b := &SightseeingBooking{
		BookingReference: booking.NewReference(booking.ReferencePrefixSightseeing),
		SightseeingID:    product.ID,
		SightseeingName:  product.Name,
		DateOfTravel:     req.DateOfTravel,
		NumberOfPax:      req.NumberOfPax,
		LeadGuest: LeadGuest{
			Name:           req.LeadGuest.Name,
			Email:          req.LeadGuest.Email,
			Phone:          req.LeadGuest.Phone,
			PassportNumber: req.LeadGuest.PassportNumber,
			PanNumber:      req.LeadGuest.PanNumber,
		},
		AdditionalGuests: guests,
		TotalAmount:      total,
		Status:           booking.StatusPending,
		Notes:            req.Notes,
		UserID:           userID,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return &BookingResponse{SightseeingBooking: b, Sightseeing: product.Project()}, nil
}

// GetByID returns a booking to its owner or to back-office roles.
func (s *Service) GetByID(ctx context.Context, id, actorID int64, actorRole string) (*SightseeingBooking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID && !backOffice(actorRole) {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]SightseeingBooking, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListAll is the privileged cross-user listing. When a sales caller passes
// no explicit filter, cancelled bookings are excluded from their view.
func (s *Service) ListAll(ctx context.Context, actorRole, status string) ([]SightseeingBooking, error) {
	if status != "" && !booking.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	exclude := ""
	if status == "" && actorRole == string(auth.RoleSales) {
		exclude = string(booking.StatusCancelled)
	}
	return s.repo.List(ctx, status, exclude)
}

// UpdateStatus accepts only the three booking states; anything else is
// rejected and the stored status stays unchanged.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*SightseeingBooking, error) {
	if !booking.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, booking.Status(status)); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete hard-deletes a booking. Only the owner or an admin may do it.
func (s *Service) Delete(ctx context.Context, id, actorID int64, actorRole string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.UserID != actorID && actorRole != string(auth.RoleAdmin) {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// Voucher renders the PDF voucher for a confirmed booking.
func (s *Service) Voucher(ctx context.Context, id, actorID int64, actorRole string) ([]byte, error) {
	b, err := s.GetByID(ctx, id, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if b.Status != booking.StatusConfirmed {
		return nil, ErrVoucherNotConfirmed
	}
	return GenerateVoucher(b)
}

func backOffice(role string) bool {
	switch auth.UserRole(role) {
	case auth.RoleAdmin, auth.RoleOperations, auth.RoleSales:
		return true
	}
	return false
}
