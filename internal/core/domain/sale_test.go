package domain

import "testing"

func TestSale_ApplyPayment(t *testing.T) {
	tests := []struct {
		name        string
		total, paid float64
		wantStatus  PaymentStatus
		wantPending float64
	}{
		{"nothing paid", 100, 0, PaymentPending, 100},
		{"zero total nothing paid", 0, 0, PaymentPending, 0},
		{"part paid", 100, 40, PaymentPartial, 60},
		{"fully paid", 100, 100, PaymentPaid, 0},
		{"overpaid", 100, 120, PaymentPaid, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sale{TotalAmount: tt.total}
			s.ApplyPayment(tt.paid)
			if s.PaymentStatus != tt.wantStatus || s.AmountPending != tt.wantPending {
				t.Fatalf("got %s pending=%v, want %s pending=%v", s.PaymentStatus, s.AmountPending, tt.wantStatus, tt.wantPending)
			}
		})
	}
}
