package models

type Crew struct {
	CrewID       int64   `json:"crew_id" db:"crew_id"`
	CrewName     string  `json:"crew_name" db:"crew_name"`
	Contact      string  `json:"contact" db:"contact"`
	AreaID       int64   `json:"area_id" db:"area_id"`
	ScheduleID   int64   `json:"schedule_id" db:"schedule_id"`
	TeamID       int64   `json:"team_id" db:"team_id"`
	CreatedAt    int64   `json:"created_at" db:"created_at"`
	AreaName     *string `json:"area_name,omitempty" db:"area_name"`
	ScheduleDate *string `json:"schedule_date,omitempty" db:"schedule_date"`
}

// CreateCrewRequest is the request body for POST /crew
type CreateCrewRequest struct {
	CrewName   string   `json:"crew_name" validate:"required"`
	Contact    string   `json:"contact"`
	AreaID     FlexInt  `json:"area_id" validate:"required"`
	ScheduleID *FlexInt `json:"schedule_id"`
	TeamID     *FlexInt `json:"team_id"`
}

// UpdateCrewRequest is the request body for PUT /crew/{id}. Omitted ids keep their value.
type UpdateCrewRequest struct {
	CrewName   string   `json:"crew_name" validate:"required"`
	Contact    string   `json:"contact"`
	AreaID     *FlexInt `json:"area_id"`
	ScheduleID *FlexInt `json:"schedule_id"`
	TeamID     *FlexInt `json:"team_id"`
}
