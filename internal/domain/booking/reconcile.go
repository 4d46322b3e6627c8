package booking

import "math"

// SumClaims returns the ledger sum rounded to cents. This is the
// authoritative claimed amount for a booking.
func SumClaims(claims []PaymentClaim) float64 {
	var total float64
	for _, c := range claims {
		total += c.Amount
	}
	return round2(total)
}

// DerivePaymentStatus computes payment status from amounts. Refunded is an
// externally-set terminal state and is never overwritten here.
func DerivePaymentStatus(totalAmount, claimedAmount float64, current PaymentStatus) PaymentStatus {
	if current == PaymentRefunded {
		return PaymentRefunded
	}
	if totalAmount > 0 && claimedAmount >= totalAmount {
		return PaymentPaid
	}
	if claimedAmount <= 0 {
		return PaymentUnpaid
	}
	return PaymentPartiallyPaid
}

// Reconcile applies the derivation to a booking in place, returning true if
// anything changed. ClaimedAmount is taken as given; callers that hold the
// ledger should pass SumClaims first.
func Reconcile(b *Booking) bool {
	status := DerivePaymentStatus(b.TotalAmount, b.ClaimedAmount, b.PaymentStatus)
	claimed := status == PaymentPaid

	changed := b.PaymentStatus != status || b.PaymentClaimed != claimed
	b.PaymentStatus = status
	b.PaymentClaimed = claimed
	return changed
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
