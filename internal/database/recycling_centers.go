package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
)

const centerSelect = `SELECT rc.center_id, rc.location, rc.capacity, rc.operating_hours, rc.waste_id, rc.created_at,
		w.category AS waste_category
	FROM recycling_centers rc
	LEFT JOIN waste w ON w.waste_id = rc.waste_id`

func ListRecyclingCenters(ctx context.Context, db *sqlx.DB) ([]models.RecyclingCenter, error) {
	centers := []models.RecyclingCenter{}
	if err := db.SelectContext(ctx, &centers, centerSelect+` ORDER BY rc.center_id DESC`); err != nil {
		return nil, fmt.Errorf("failed to list recycling centers: %w", err)
	}
	return centers, nil
}

func GetRecyclingCenter(ctx context.Context, db *sqlx.DB, id int64) (*models.RecyclingCenter, error) {
	var center models.RecyclingCenter
	if err := getOne(ctx, db, &center, "Recycling center", centerSelect+` WHERE rc.center_id = ?`, id); err != nil {
		return nil, err
	}
	return &center, nil
}

func CreateRecyclingCenter(ctx context.Context, db *sqlx.DB, req models.RecyclingCenterRequest) (int64, error) {
	wasteID := req.WasteIDValue()
	if wasteID != nil {
		if err := checkReferences(ctx, db, wasteRef(*wasteID)); err != nil {
			return 0, err
		}
	}

	id, err := insertReturningID(ctx, db,
		`INSERT INTO recycling_centers (location, capacity, operating_hours, waste_id, created_at)
		 VALUES (?, ?, ?, ?, ?) RETURNING center_id`,
		req.Location, float64(req.Capacity), req.OperatingHours, nullInt64(wasteID), time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create recycling center: %w", err)
	}
	return id, nil
}

func UpdateRecyclingCenter(ctx context.Context, db *sqlx.DB, id int64, req models.RecyclingCenterRequest) error {
	wasteID := req.WasteIDValue()
	if wasteID != nil {
		if err := checkReferences(ctx, db, wasteRef(*wasteID)); err != nil {
			return err
		}
	}

	return execAffecting(ctx, db, "Recycling center",
		`UPDATE recycling_centers SET location = ?, capacity = ?, operating_hours = ?, waste_id = ? WHERE center_id = ?`,
		req.Location, float64(req.Capacity), req.OperatingHours, nullInt64(wasteID), id,
	)
}

func DeleteRecyclingCenter(ctx context.Context, db *sqlx.DB, id int64) error {
	if _, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM recycling_centers WHERE center_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete recycling center: %w", err)
	}
	return nil
}
