package booking

// CreateBookingRequest deliberately avoids `required` on TotalAmount: gin
// treats the zero value as missing, and a zero-total booking is legitimate.
type CreateBookingRequest struct {
	TotalAmount float64 `json:"total_amount" binding:"gte=0"`
	Description string  `json:"description"`
}

// ClaimRequest records a payment claim against a booking. Negative amounts
// are refund adjustments; zero is rejected.
type ClaimRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=wallet cash card bank_transfer"`
	TransactionID string  `json:"transaction_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
