package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// RepairReport summarizes one run of the ledger repair job.
type RepairReport struct {
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
	Scanned           int       `json:"scanned"`
	ClaimsSynthesized int       `json:"claims_synthesized"`
	ClaimsEstimated   int       `json:"claims_estimated"`
	AmountsRepaired   int       `json:"amounts_repaired"`
	StatusesRepaired  int       `json:"statuses_repaired"`
	RefundedUntouched int       `json:"refunded_untouched"`
	Failures          int       `json:"failures"`
	FailedBookingIDs  []int64   `json:"failed_booking_ids,omitempty"`
}

// RunRepair walks every booking and restores the claimed_amount == ledger-sum
// invariant. Pre-ledger bookings get a synthesized historical claim from the
// legacy columns; partially-paid records with a zero claimed amount get the
// half-of-total estimate, flagged as such. Failures are logged and counted,
// not fatal, so one bad record cannot stop a batch.
func RunRepair(ctx context.Context, db *gorm.DB) (*RepairReport, error) {
	report := &RepairReport{StartedAt: time.Now()}

	var bookings []Booking
	if err := db.WithContext(ctx).Preload("PaymentClaims").Find(&bookings).Error; err != nil {
		return nil, err
	}

	for i := range bookings {
		b := &bookings[i]
		report.Scanned++

		if err := repairOne(ctx, db, b, report); err != nil {
			report.Failures++
			report.FailedBookingIDs = append(report.FailedBookingIDs, b.ID)
			log.Printf("repair_failed booking_id=%d reference=%s error=%q", b.ID, b.BookingReference, err)
		}
	}

	report.FinishedAt = time.Now()
	return report, nil
}

func repairOne(ctx context.Context, db *gorm.DB, b *Booking, report *RepairReport) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(b.PaymentClaims) == 0 {
			synth := synthesizeLegacyClaim(b)
			if synth != nil {
				if err := tx.Create(synth).Error; err != nil {
					return err
				}
				b.PaymentClaims = append(b.PaymentClaims, *synth)
				report.ClaimsSynthesized++
				if synth.Estimated {
					report.ClaimsEstimated++
				}
			}
		}

		sum := SumClaims(b.PaymentClaims)
		updates := map[string]interface{}{}

		if sum != b.ClaimedAmount {
			b.ClaimedAmount = sum
			updates["claimed_amount"] = sum
			report.AmountsRepaired++
		}

		if b.PaymentStatus == PaymentRefunded {
			report.RefundedUntouched++
		} else if Reconcile(b) {
			updates["payment_status"] = b.PaymentStatus
			updates["payment_claimed"] = b.PaymentClaimed
			report.StatusesRepaired++
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&Booking{}).Where("id = ?", b.ID).Updates(updates).Error
	})
}

// synthesizeLegacyClaim reconstructs a single historical claim for a booking
// recorded before the ledger existed. Returns nil when there is nothing to
// reconstruct.
func synthesizeLegacyClaim(b *Booking) *PaymentClaim {
	claim := &PaymentClaim{
		BookingID:     b.ID,
		PaymentMethod: PaymentMethodWallet,
		TransactionID: fmt.Sprintf("LEGACY-%d", b.ID),
		Backfilled:    true,
	}
	if b.PaymentClaimedAt != nil {
		claim.ClaimedAt = *b.PaymentClaimedAt
	}
	if b.PaymentClaimedBy != nil {
		claim.ClaimedBy = *b.PaymentClaimedBy
	}

	switch {
	case b.ClaimedAmount > 0:
		claim.Amount = b.ClaimedAmount
	case b.PaymentStatus == PaymentPartiallyPaid && b.TotalAmount > 0:
		// Best-effort estimate: the pre-ledger data recorded a partial
		// payment but lost the amount. Half of the total is a guess, not
		// ground truth.
		claim.Amount = round2(b.TotalAmount / 2)
		claim.Estimated = true
	default:
		return nil
	}

	return claim
}
