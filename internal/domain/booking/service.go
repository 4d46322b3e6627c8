package booking

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tripmarket/internal/domain/auth"
)

const PaymentMethodWallet = "wallet"

// WalletLedger is the slice of the wallet service the claim flow needs.
// Wallet-method claims debit the claiming agent's balance; negative (refund
// adjustment) claims credit it back. Both run inside the claim append's
// transaction so a failed append rolls the balance movement back too.
type WalletLedger interface {
	SpendTx(tx *gorm.DB, userID int64, amount float64) error
	RefundTx(tx *gorm.DB, userID int64, amount float64) error
}

type Service struct {
	repo    *Repository
	wallets WalletLedger
}

func NewService(repo *Repository, wallets WalletLedger) *Service {
	return &Service{repo: repo, wallets: wallets}
}

func (s *Service) Create(ctx context.Context, userID int64, req *CreateBookingRequest) (*Booking, error) {
	if req.TotalAmount < 0 {
		return nil, ErrValidation
	}

	b := &Booking{
		BookingReference: NewReference(ReferencePrefixBooking),
		UserID:           userID,
		Description:      req.Description,
		TotalAmount:      round2(req.TotalAmount),
		Status:           StatusPending,
		PaymentStatus:    PaymentUnpaid,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context, status string) ([]Booking, error) {
	if status != "" && !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

// AppendClaim is the privileged payment-confirmation path. The ledger row,
// the wallet movement and the derived fields are written in one transaction:
// either all of them commit or none.
func (s *Service) AppendClaim(ctx context.Context, bookingID, claimedBy int64, req *ClaimRequest) (*Booking, error) {
	if req.Amount == 0 {
		return nil, ErrZeroClaim
	}

	var move func(tx *gorm.DB) error
	if s.wallets != nil && req.PaymentMethod == PaymentMethodWallet {
		if req.Amount > 0 {
			move = func(tx *gorm.DB) error { return s.wallets.SpendTx(tx, claimedBy, req.Amount) }
		} else {
			move = func(tx *gorm.DB) error { return s.wallets.RefundTx(tx, claimedBy, -req.Amount) }
		}
	}

	claim := &PaymentClaim{
		Amount:        round2(req.Amount),
		ClaimedBy:     claimedBy,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}
	if claim.TransactionID == "" {
		claim.TransactionID = fmt.Sprintf("TXN-%d-%d", bookingID, claimedBy)
	}

	return s.repo.AppendClaim(ctx, bookingID, claim, move)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, Status(status)); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) MarkRefunded(ctx context.Context, id int64) (*Booking, error) {
	if err := s.repo.MarkRefunded(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete hard-deletes a booking together with its ledger. Only admins may do
// this; the ledger is the audit trail, so there is no softer variant.
func (s *Service) Delete(ctx context.Context, id int64, actorRole string) error {
	if actorRole != string(auth.RoleAdmin) {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
