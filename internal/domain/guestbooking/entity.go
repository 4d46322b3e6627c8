package guestbooking

import (
	"time"

	"gorm.io/gorm"

	"tripmarket/internal/domain/booking"
)

// SightseeingBooking is a guest reservation against a catalog product. The
// product name is a snapshot taken at booking time, not live-synced.
type SightseeingBooking struct {
	ID               int64             `json:"id" gorm:"primaryKey"`
	BookingReference string            `json:"booking_reference" gorm:"uniqueIndex;not null"`
	SightseeingID    int64             `json:"sightseeing_id" gorm:"index;not null"`
	SightseeingName  string            `json:"sightseeing_name" gorm:"not null"`
	DateOfTravel     time.Time         `json:"date_of_travel"`
	NumberOfPax      int               `json:"number_of_pax" gorm:"not null"`
	LeadGuest        LeadGuest         `json:"lead_guest" gorm:"embedded;embeddedPrefix:lead_"`
	AdditionalGuests []AdditionalGuest `json:"additional_guests" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	TotalAmount      float64           `json:"total_amount" gorm:"not null"`
	Status           booking.Status    `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	Notes            string            `json:"notes,omitempty" gorm:"type:text"`
	UserID           int64             `json:"user_id" gorm:"index;not null"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (SightseeingBooking) TableName() string { return "sightseeing_bookings" }

// BeforeCreate guards construction paths that bypass the service.
func (b *SightseeingBooking) BeforeCreate(_ *gorm.DB) error {
	if b.BookingReference == "" {
		b.BookingReference = booking.NewReference(booking.ReferencePrefixSightseeing)
	}
	if b.Status == "" {
		b.Status = booking.StatusPending
	}
	return nil
}

// LeadGuest is the primary named traveler on the booking.
type LeadGuest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PassportNumber string `json:"passport_number"`
	PanNumber      string `json:"pan_number"`
}

// AdditionalGuest keeps only name and passport; any other guest fields from
// the request are dropped.
type AdditionalGuest struct {
	ID             int64  `json:"-" gorm:"primaryKey"`
	BookingID      int64  `json:"-" gorm:"index;not null"`
	Name           string `json:"name"`
	PassportNumber string `json:"passport_number"`
}

func (AdditionalGuest) TableName() string { return "sightseeing_booking_guests" }
