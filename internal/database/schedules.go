package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
)

const scheduleSelect = `SELECT s.schedule_id, s.schedule_date, s.area_id, s.created_at, a.area_name
	FROM collection_schedules s
	LEFT JOIN areas a ON a.area_id = s.area_id`

func ListSchedules(ctx context.Context, db *sqlx.DB, areaID *int64) ([]models.CollectionSchedule, error) {
	schedules := []models.CollectionSchedule{}
	query := scheduleSelect
	args := []interface{}{}
	if areaID != nil {
		query += ` WHERE s.area_id = ?`
		args = append(args, *areaID)
	}
	query += ` ORDER BY s.schedule_id DESC`

	if err := db.SelectContext(ctx, &schedules, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

func GetSchedule(ctx context.Context, db *sqlx.DB, id int64) (*models.CollectionSchedule, error) {
	var schedule models.CollectionSchedule
	if err := getOne(ctx, db, &schedule, "Schedule", scheduleSelect+` WHERE s.schedule_id = ?`, id); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func CreateSchedule(ctx context.Context, db *sqlx.DB, req models.ScheduleRequest) (int64, error) {
	if err := checkReferences(ctx, db, areaRef(int64(req.AreaID))); err != nil {
		return 0, err
	}

	id, err := insertReturningID(ctx, db,
		`INSERT INTO collection_schedules (schedule_date, area_id, created_at) VALUES (?, ?, ?) RETURNING schedule_id`,
		req.ScheduleDate, int64(req.AreaID), time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create schedule: %w", err)
	}
	return id, nil
}

func UpdateSchedule(ctx context.Context, db *sqlx.DB, id int64, req models.ScheduleRequest) error {
	if err := checkReferences(ctx, db, areaRef(int64(req.AreaID))); err != nil {
		return err
	}
	return execAffecting(ctx, db, "Schedule",
		`UPDATE collection_schedules SET schedule_date = ?, area_id = ? WHERE schedule_id = ?`,
		req.ScheduleDate, int64(req.AreaID), id,
	)
}

func DeleteSchedule(ctx context.Context, db *sqlx.DB, id int64) error {
	if _, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM collection_schedules WHERE schedule_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}
