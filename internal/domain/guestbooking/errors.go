package guestbooking

import "errors"

var (
	ErrNotFound            = errors.New("sightseeing booking not found")
	ErrSightseeingNotFound = errors.New("sightseeing not found")
	ErrPaxMismatch         = errors.New("number_of_pax must equal additional guests plus the lead guest")
	ErrInvalidStatus       = errors.New("status must be pending, confirmed or cancelled")
	ErrForbidden           = errors.New("not allowed to access this booking")
	ErrVoucherNotConfirmed = errors.New("voucher is only available for confirmed bookings")
)
