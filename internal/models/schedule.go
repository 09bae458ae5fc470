package models

type CollectionSchedule struct {
	ScheduleID   int64   `json:"schedule_id" db:"schedule_id"`
	ScheduleDate string  `json:"schedule_date" db:"schedule_date"`
	AreaID       int64   `json:"area_id" db:"area_id"`
	CreatedAt    int64   `json:"created_at" db:"created_at"`
	AreaName     *string `json:"area_name,omitempty" db:"area_name"`
}

type ScheduleRequest struct {
	ScheduleDate string  `json:"schedule_date" validate:"required,datetime=2006-01-02"`
	AreaID       FlexInt `json:"area_id" validate:"required"`
}
