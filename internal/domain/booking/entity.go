package booking

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentRefunded      PaymentStatus = "refunded"
)

// Booking is a generic agent reservation carrying the payment claim ledger.
// ClaimedAmount is kept equal to the ledger sum; the reconcile job repairs
// any divergence.
type Booking struct {
	ID               int64          `json:"id" gorm:"primaryKey"`
	BookingReference string         `json:"booking_reference" gorm:"uniqueIndex;not null"`
	UserID           int64          `json:"user_id" gorm:"index;not null"`
	Description      string         `json:"description,omitempty" gorm:"type:text"`
	TotalAmount      float64        `json:"total_amount" gorm:"not null" validate:"gte=0"`
	ClaimedAmount    float64        `json:"claimed_amount" gorm:"not null;default:0"`
	PaymentStatus    PaymentStatus  `json:"payment_status" gorm:"type:varchar(16);not null;default:'unpaid'"`
	PaymentClaimed   bool           `json:"payment_claimed" gorm:"not null;default:false"`
	Status           Status         `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	PaymentClaims    []PaymentClaim `json:"payment_claims,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`

	// Legacy single-claim columns, read only by the reconcile job when it
	// synthesizes ledger entries for pre-ledger records.
	PaymentClaimedAt *time.Time `json:"-" gorm:"column:payment_claimed_at"`
	PaymentClaimedBy *int64     `json:"-" gorm:"column:payment_claimed_by"`
}

func (Booking) TableName() string { return "bookings" }

// BeforeCreate guards construction paths that bypass NewBooking.
func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.BookingReference == "" {
		b.BookingReference = NewReference(ReferencePrefixBooking)
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentUnpaid
	}
	return nil
}

// PaymentClaim is one append-only ledger event. Claims are never amended;
// corrections are recorded as new claims (negative amounts for refund
// adjustments).
type PaymentClaim struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	BookingID     int64     `json:"booking_id" gorm:"index;not null"`
	Amount        float64   `json:"amount" gorm:"not null"`
	ClaimedBy     int64     `json:"claimed_by" gorm:"not null"`
	ClaimedAt     time.Time `json:"claimed_at" gorm:"autoCreateTime"`
	PaymentMethod string    `json:"payment_method" gorm:"type:varchar(32);not null"`
	TransactionID string    `json:"transaction_id"`

	// Backfilled marks claims synthesized from legacy fields by the
	// reconcile job; Estimated additionally marks the half-of-total
	// heuristic, which is a guess rather than a recorded amount.
	Backfilled bool `json:"backfilled,omitempty" gorm:"not null;default:false"`
	Estimated  bool `json:"estimated,omitempty" gorm:"not null;default:false"`
}

func (PaymentClaim) TableName() string { return "payment_claims" }

func (p *PaymentClaim) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.ClaimedAt.IsZero() {
		p.ClaimedAt = time.Now()
	}
	return nil
}
