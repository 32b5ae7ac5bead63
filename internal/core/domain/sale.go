package domain

import "time"

// PaymentStatus tracks how much of a sale has been settled.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}

// Sale is a produce or livestock sale owned directly by FarmerID.
type Sale struct {
	ID            string        `json:"id" bson:"_id"`
	FarmerID      string        `json:"farmer_id" bson:"farmer_id"`
	FarmID        string        `json:"farm_id,omitempty" bson:"farm_id,omitempty"`
	CustomerName  string        `json:"customer_name" bson:"customer_name"`
	CustomerPhone string        `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	Item          string        `json:"item" bson:"item"`
	Quantity      float64       `json:"quantity" bson:"quantity"`
	Unit          string        `json:"unit,omitempty" bson:"unit,omitempty"`
	UnitPrice     float64       `json:"unit_price" bson:"unit_price"`
	TotalAmount   float64       `json:"total_amount" bson:"total_amount"`
	AmountPaid    float64       `json:"amount_paid" bson:"amount_paid"`
	AmountPending float64       `json:"amount_pending" bson:"amount_pending"`
	PaymentStatus PaymentStatus `json:"payment_status" bson:"payment_status"`
	SaleDate      time.Time     `json:"sale_date" bson:"sale_date"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}

// ApplyPayment records amountPaid against the total and recomputes the
// pending amount and payment status. Nothing paid is always pending, even
// on a zero total.
func (s *Sale) ApplyPayment(amountPaid float64) {
	s.AmountPaid = amountPaid
	s.AmountPending = max(s.TotalAmount-amountPaid, 0)
	switch {
	case amountPaid <= 0:
		s.PaymentStatus = PaymentPending
	case amountPaid >= s.TotalAmount:
		s.PaymentStatus = PaymentPaid
	default:
		s.PaymentStatus = PaymentPartial
	}
}

// Contact is an address-book entry (vet, agrovet, buyer, supplier) owned by OwnerID.
type Contact struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	Name      string    `json:"name" bson:"name"`
	Category  string    `json:"category" bson:"category"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
