package models

const (
	BillStatusPending = "Pending"
	BillStatusPaid    = "Paid"
	BillStatusOverdue = "Overdue"
)

type Bill struct {
	BillID      int64   `json:"bill_id" db:"bill_id"`
	Status      string  `json:"status" db:"status"`
	Amount      float64 `json:"amount" db:"amount"`
	DueDate     string  `json:"due_date" db:"due_date"` // YYYY-MM-DD
	CitizenID   int64   `json:"citizen_id" db:"citizen_id"`
	CreatedAt   int64   `json:"created_at" db:"created_at"`
	CitizenName *string `json:"citizen_name,omitempty" db:"citizen_name"`
}

// BillRequest is the request body for POST /bills
type BillRequest struct {
	Status    string    `json:"status" validate:"required,oneof=Pending Paid Overdue"`
	Amount    FlexFloat `json:"amount" validate:"required"`
	DueDate   string    `json:"due_date" validate:"required,datetime=2006-01-02"`
	CitizenID FlexInt   `json:"citizen_id" validate:"required"`
}

// BillStatusRequest is the request body for PUT /bills/{id}; bills only change status after creation
type BillStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Paid Overdue"`
}

type BillStatistics struct {
	TotalBills   int64   `json:"total_bills" db:"total_bills"`
	TotalAmount  float64 `json:"total_amount" db:"total_amount"`
	PaidCount    int64   `json:"paid_count" db:"paid_count"`
	PendingCount int64   `json:"pending_count" db:"pending_count"`
	OverdueCount int64   `json:"overdue_count" db:"overdue_count"`
}
