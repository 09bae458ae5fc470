package models

type Payment struct {
	PaymentID     int64   `json:"payment_id" db:"payment_id"`
	Amount        float64 `json:"amount" db:"amount"`
	PaymentMethod string  `json:"payment_method" db:"payment_method"`
	BillID        int64   `json:"bill_id" db:"bill_id"`
	CreatedAt     int64   `json:"created_at" db:"created_at"`
	CitizenID     *int64  `json:"citizen_id,omitempty" db:"citizen_id"`
	CitizenName   *string `json:"citizen_name,omitempty" db:"citizen_name"`
}

// PaymentRequest is the request body for POST /payments. Payments are immutable once recorded.
type PaymentRequest struct {
	Amount        FlexFloat `json:"amount" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
	BillID        FlexInt   `json:"bill_id" validate:"required"`
}

type PaymentStatistics struct {
	TotalPayments  int64   `json:"total_payments" db:"total_payments"`
	TotalReceived  float64 `json:"total_received" db:"total_received"`
	AveragePayment float64 `json:"average_payment" db:"average_payment"`
}
