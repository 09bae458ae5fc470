package models

type RecyclingCenter struct {
	CenterID       int64   `json:"center_id" db:"center_id"`
	Location       string  `json:"location" db:"location"`
	Capacity       float64 `json:"capacity" db:"capacity"`
	OperatingHours string  `json:"operating_hours" db:"operating_hours"`
	WasteID        *int64  `json:"waste_id" db:"waste_id"`
	CreatedAt      int64   `json:"created_at" db:"created_at"`
	WasteCategory  *string `json:"waste_category,omitempty" db:"waste_category"`
}

type RecyclingCenterRequest struct {
	Location       string    `json:"location" validate:"required"`
	Capacity       FlexFloat `json:"capacity" validate:"required"`
	OperatingHours string    `json:"operating_hours"`
	WasteID        *FlexInt  `json:"waste_id"`
}

// WasteIDValue maps an omitted or zero waste_id to NULL.
func (r *RecyclingCenterRequest) WasteIDValue() *int64 {
	if r.WasteID == nil || *r.WasteID == 0 {
		return nil
	}
	v := int64(*r.WasteID)
	return &v
}
