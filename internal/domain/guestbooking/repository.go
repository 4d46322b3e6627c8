package guestbooking

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripmarket/internal/domain/booking"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists the booking with its guests, regenerating the reference on
// a uniqueness conflict.
func (r *Repository) Create(ctx context.Context, b *SightseeingBooking) error {
	for attempt := 0; attempt < 3; attempt++ {
		err := r.db.WithContext(ctx).Create(b).Error
		if err == nil {
			return nil
		}
		if !isUniqueConstraintError(err) {
			return err
		}
		b.ID = 0
		b.BookingReference = booking.NewReference(booking.ReferencePrefixSightseeing)
	}
	return booking.ErrReferenceConflict
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*SightseeingBooking, error) {
	var b SightseeingBooking
	err := r.db.WithContext(ctx).Preload("AdditionalGuests").First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]SightseeingBooking, error) {
	var out []SightseeingBooking
	err := r.db.WithContext(ctx).
		Preload("AdditionalGuests").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// List returns bookings across users. An empty status lists everything; an
// exclude status filters that one out (the sales default view).
func (r *Repository) List(ctx context.Context, status, exclude string) ([]SightseeingBooking, error) {
	var out []SightseeingBooking
	q := r.db.WithContext(ctx).Preload("AdditionalGuests").Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	} else if exclude != "" {
		q = q.Where("status <> ?", exclude)
	}
	return out, q.Find(&out).Error
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status booking.Status) error {
	res := r.db.WithContext(ctx).Model(&SightseeingBooking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Select(clause.Associations).Delete(&SightseeingBooking{ID: id})
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
