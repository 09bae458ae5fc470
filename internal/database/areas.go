package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
)

const areaColumns = `area_id, area_name, description, created_at`

// ListAreas returns every area, newest first
func ListAreas(ctx context.Context, db *sqlx.DB) ([]models.Area, error) {
	areas := []models.Area{}
	query := `SELECT ` + areaColumns + ` FROM areas ORDER BY area_id DESC`
	if err := db.SelectContext(ctx, &areas, query); err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return areas, nil
}

func GetArea(ctx context.Context, db *sqlx.DB, id int64) (*models.Area, error) {
	var area models.Area
	query := `SELECT ` + areaColumns + ` FROM areas WHERE area_id = ?`
	if err := getOne(ctx, db, &area, "Area", query, id); err != nil {
		return nil, err
	}
	return &area, nil
}

func CreateArea(ctx context.Context, db *sqlx.DB, req models.AreaRequest) (int64, error) {
	id, err := insertReturningID(ctx, db,
		`INSERT INTO areas (area_name, description, created_at) VALUES (?, ?, ?) RETURNING area_id`,
		req.AreaName, req.Description, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create area: %w", err)
	}
	return id, nil
}

func UpdateArea(ctx context.Context, db *sqlx.DB, id int64, req models.AreaRequest) error {
	return execAffecting(ctx, db, "Area",
		`UPDATE areas SET area_name = ?, description = ? WHERE area_id = ?`,
		req.AreaName, req.Description, id,
	)
}

// DeleteArea refuses while citizens still live in the area
func DeleteArea(ctx context.Context, db *sqlx.DB, id int64) error {
	n, err := countRows(ctx, db, `SELECT COUNT(*) FROM citizens WHERE area_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to count citizens: %w", err)
	}
	if n > 0 {
		return &ConflictError{Message: "Cannot delete area with citizens. Delete citizens first."}
	}

	if _, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM areas WHERE area_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	return nil
}
