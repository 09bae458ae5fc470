package models

type Citizen struct {
	CitizenID int64   `json:"citizen_id" db:"citizen_id"`
	Name      string  `json:"name" db:"name"`
	Address   string  `json:"address" db:"address"`
	Contact   string  `json:"contact" db:"contact"`
	AreaID    int64   `json:"area_id" db:"area_id"`
	CreatedAt int64   `json:"created_at" db:"created_at"`
	AreaName  *string `json:"area_name,omitempty" db:"area_name"`
}

// CitizenRequest is the request body for POST /citizens and PUT /citizens/{id}
type CitizenRequest struct {
	Name    string  `json:"name" validate:"required"`
	Address string  `json:"address" validate:"required"`
	Contact string  `json:"contact"`
	AreaID  FlexInt `json:"area_id" validate:"required"`
}
