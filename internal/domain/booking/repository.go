package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a booking, regenerating the reference on a uniqueness
// conflict instead of surfacing the collision to the caller.
func (r *Repository) Create(ctx context.Context, b *Booking) error {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		err := r.db.WithContext(ctx).Create(b).Error
		if err == nil {
			return nil
		}
		if !isUniqueConstraintError(err) {
			return err
		}
		b.ID = 0
		b.BookingReference = NewReference(ReferencePrefixBooking)
	}
	return ErrReferenceConflict
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	var b Booking
	err := r.db.WithContext(ctx).
		Preload("PaymentClaims", func(db *gorm.DB) *gorm.DB {
			return db.Order("claimed_at asc")
		}).
		First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Booking, error) {
	var out []Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

func (r *Repository) List(ctx context.Context, status string) ([]Booking, error) {
	var out []Booking
	q := r.db.WithContext(ctx).Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return out, q.Find(&out).Error
}

// AppendClaim records a ledger event and updates the derived fields inside
// one transaction, with the booking row locked so concurrent claims cannot
// under-count. A non-nil move (the wallet balance movement) runs in the same
// transaction, after the lock, so a missing booking or a failed append never
// leaves a committed debit behind.
func (r *Repository) AppendClaim(ctx context.Context, bookingID int64, claim *PaymentClaim, move func(tx *gorm.DB) error) (*Booking, error) {
	var b Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if move != nil {
			if err := move(tx); err != nil {
				return err
			}
		}

		claim.BookingID = b.ID
		if err := tx.Create(claim).Error; err != nil {
			return err
		}

		b.ClaimedAmount = round2(b.ClaimedAmount + claim.Amount)
		Reconcile(&b)

		return tx.Model(&Booking{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
			"claimed_amount":  b.ClaimedAmount,
			"payment_status":  b.PaymentStatus,
			"payment_claimed": b.PaymentClaimed,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	res := r.db.WithContext(ctx).Model(&Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkRefunded sets the terminal refunded state. The derivation never
// produces or clears it.
func (r *Repository) MarkRefunded(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
		"payment_status":  PaymentRefunded,
		"payment_claimed": false,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Select(clause.Associations).Delete(&Booking{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
