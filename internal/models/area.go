package models

type Area struct {
	AreaID      int64  `json:"area_id" db:"area_id"`
	AreaName    string `json:"area_name" db:"area_name"`
	Description string `json:"description" db:"description"`
	CreatedAt   int64  `json:"created_at" db:"created_at"` // Unix timestamp
}

// AreaRequest is the request body for POST /areas and PUT /areas/{id}
type AreaRequest struct {
	AreaName    string `json:"area_name" validate:"required"`
	Description string `json:"description"`
}
