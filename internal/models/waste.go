package models

const WasteStatusPending = "Pending"

type Waste struct {
	WasteID        int64   `json:"waste_id" db:"waste_id"`
	Category       string  `json:"category" db:"category"`
	Quantity       float64 `json:"quantity" db:"quantity"`
	CitizenID      int64   `json:"citizen_id" db:"citizen_id"`
	AreaID         int64   `json:"area_id" db:"area_id"`
	CollectionDate *string `json:"collection_date" db:"collection_date"`
	Status         string  `json:"status" db:"status"`
	CreatedAt      int64   `json:"created_at" db:"created_at"`
	CitizenName    *string `json:"citizen_name,omitempty" db:"citizen_name"`
	AreaName       *string `json:"area_name,omitempty" db:"area_name"`
}

// WasteResponse echoes category under its legacy waste_type name as well
type WasteResponse struct {
	Waste
	WasteType string `json:"waste_type"`
}

func (w *Waste) ToResponse() WasteResponse {
	return WasteResponse{Waste: *w, WasteType: w.Category}
}

// WasteRequest is the request body for POST /waste and PUT /waste/{id}.
// waste_type is accepted as an alias of category.
type WasteRequest struct {
	Category       string    `json:"category" validate:"required"`
	WasteType      string    `json:"waste_type"`
	Quantity       FlexFloat `json:"quantity" validate:"required"`
	CitizenID      FlexInt   `json:"citizen_id" validate:"required"`
	AreaID         FlexInt   `json:"area_id" validate:"required"`
	CollectionDate *string   `json:"collection_date" validate:"omitempty,datetime=2006-01-02"`
	Status         string    `json:"status"`
}

// Normalize folds waste_type into category and fills defaults. Call before validating.
func (r *WasteRequest) Normalize() {
	if r.Category == "" {
		r.Category = r.WasteType
	}
	if r.Status == "" {
		r.Status = WasteStatusPending
	}
	if r.CollectionDate != nil && *r.CollectionDate == "" {
		r.CollectionDate = nil
	}
}

type WasteCategoryStatistics struct {
	Category      string  `json:"category" db:"category"`
	TotalItems    int64   `json:"total_items" db:"total_items"`
	TotalQuantity float64 `json:"total_quantity" db:"total_quantity"`
}
