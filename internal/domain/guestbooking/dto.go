package guestbooking

import (
	"time"

	"tripmarket/internal/domain/catalog"
)

type LeadGuestInput struct {
	Name           string `json:"name" binding:"required" validate:"required"`
	Email          string `json:"email" binding:"required,email" validate:"required,email"`
	Phone          string `json:"phone" binding:"required" validate:"required"`
	PassportNumber string `json:"passport_number"`
	PanNumber      string `json:"pan_number"`
}

// GuestInput may carry more fields than we persist; only name and passport
// survive the mapping.
type GuestInput struct {
	Name           string `json:"name" binding:"required"`
	PassportNumber string `json:"passport_number"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

type CreateRequest struct {
	SightseeingID    int64          `json:"sightseeing_id" binding:"required" validate:"required"`
	DateOfTravel     time.Time      `json:"date_of_travel" binding:"required"`
	NumberOfPax      int            `json:"number_of_pax" binding:"required,gte=1" validate:"gte=1"`
	LeadGuest        LeadGuestInput `json:"lead_guest" binding:"required"`
	AdditionalGuests []GuestInput   `json:"additional_guests"`
	Notes            string         `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingResponse enriches the persisted booking with a partial projection
// of the referenced product.
type BookingResponse struct {
	*SightseeingBooking
	Sightseeing *catalog.Projection `json:"sightseeing,omitempty"`
}
