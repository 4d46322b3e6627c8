package booking

import "testing"

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		claimed float64
		current PaymentStatus
		want    PaymentStatus
	}{
		{"unpaid when nothing claimed", 100, 0, PaymentUnpaid, PaymentUnpaid},
		{"unpaid when claims net negative", 100, -20, PaymentPartiallyPaid, PaymentUnpaid},
		{"partial below total", 100, 40, PaymentUnpaid, PaymentPartiallyPaid},
		{"paid at exactly total", 100, 100, PaymentPartiallyPaid, PaymentPaid},
		{"paid above total", 100, 120, PaymentUnpaid, PaymentPaid},
		{"zero total never paid", 0, 50, PaymentUnpaid, PaymentPartiallyPaid},
		{"zero total zero claimed", 0, 0, PaymentUnpaid, PaymentUnpaid},
		{"refunded is preserved", 100, 100, PaymentRefunded, PaymentRefunded},
		{"refunded preserved even when unpaid by amounts", 100, 0, PaymentRefunded, PaymentRefunded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePaymentStatus(tt.total, tt.claimed, tt.current)
			if got != tt.want {
				t.Fatalf("DerivePaymentStatus(%v, %v, %s) = %s, want %s",
					tt.total, tt.claimed, tt.current, got, tt.want)
			}
		})
	}
}

func TestSumClaims(t *testing.T) {
	claims := []PaymentClaim{
		{Amount: 50.10},
		{Amount: 25.05},
		{Amount: -10.15},
	}
	if got := SumClaims(claims); got != 65.00 {
		t.Fatalf("SumClaims = %v, want 65.00", got)
	}

	if got := SumClaims(nil); got != 0 {
		t.Fatalf("SumClaims(nil) = %v, want 0", got)
	}
}

func TestReconcileSetsPaymentClaimedFlag(t *testing.T) {
	b := &Booking{TotalAmount: 100, ClaimedAmount: 100, PaymentStatus: PaymentUnpaid}
	if changed := Reconcile(b); !changed {
		t.Fatal("expected Reconcile to report a change")
	}
	if b.PaymentStatus != PaymentPaid {
		t.Fatalf("expected status paid, got %s", b.PaymentStatus)
	}
	if !b.PaymentClaimed {
		t.Fatal("expected payment_claimed to be true")
	}

	// second run is a no-op
	if changed := Reconcile(b); changed {
		t.Fatal("expected second Reconcile to be a no-op")
	}
}

func TestReconcileIdempotentOnRefunded(t *testing.T) {
	b := &Booking{TotalAmount: 100, ClaimedAmount: 100, PaymentStatus: PaymentRefunded}
	if changed := Reconcile(b); changed {
		t.Fatal("expected Reconcile to leave a refunded booking untouched")
	}
	if b.PaymentStatus != PaymentRefunded {
		t.Fatalf("expected status refunded, got %s", b.PaymentStatus)
	}
}
