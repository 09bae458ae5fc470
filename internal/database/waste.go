package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
)

const wasteSelect = `SELECT w.waste_id, w.category, w.quantity, w.citizen_id, w.area_id, w.collection_date,
		w.status, w.created_at, c.name AS citizen_name, a.area_name
	FROM waste w
	LEFT JOIN citizens c ON c.citizen_id = w.citizen_id
	LEFT JOIN areas a ON a.area_id = w.area_id`

// ListWaste returns waste records newest first; an empty category means all
func ListWaste(ctx context.Context, db *sqlx.DB, category string) ([]models.Waste, error) {
	records := []models.Waste{}
	query := wasteSelect
	args := []interface{}{}
	if category != "" {
		query += ` WHERE w.category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY w.waste_id DESC`

	if err := db.SelectContext(ctx, &records, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list waste: %w", err)
	}
	return records, nil
}

func GetWaste(ctx context.Context, db *sqlx.DB, id int64) (*models.Waste, error) {
	var record models.Waste
	if err := getOne(ctx, db, &record, "Waste record", wasteSelect+` WHERE w.waste_id = ?`, id); err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateWaste expects a normalized request
func CreateWaste(ctx context.Context, db *sqlx.DB, req models.WasteRequest) (int64, error) {
	if err := checkReferences(ctx, db, citizenRef(int64(req.CitizenID)), areaRef(int64(req.AreaID))); err != nil {
		return 0, err
	}

	id, err := insertReturningID(ctx, db,
		`INSERT INTO waste (category, quantity, citizen_id, area_id, collection_date, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING waste_id`,
		req.Category, float64(req.Quantity), int64(req.CitizenID), int64(req.AreaID),
		nullString(req.CollectionDate), req.Status, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create waste record: %w", err)
	}
	return id, nil
}

func UpdateWaste(ctx context.Context, db *sqlx.DB, id int64, req models.WasteRequest) error {
	if err := checkReferences(ctx, db, citizenRef(int64(req.CitizenID)), areaRef(int64(req.AreaID))); err != nil {
		return err
	}

	return execAffecting(ctx, db, "Waste record",
		`UPDATE waste SET category = ?, quantity = ?, citizen_id = ?, area_id = ?, collection_date = ?, status = ?
		 WHERE waste_id = ?`,
		req.Category, float64(req.Quantity), int64(req.CitizenID), int64(req.AreaID),
		nullString(req.CollectionDate), req.Status, id,
	)
}

func DeleteWaste(ctx context.Context, db *sqlx.DB, id int64) error {
	if _, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM waste WHERE waste_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete waste record: %w", err)
	}
	return nil
}

// GetWasteStatistics groups records by category, largest groups first
func GetWasteStatistics(ctx context.Context, db *sqlx.DB) ([]models.WasteCategoryStatistics, error) {
	stats := []models.WasteCategoryStatistics{}
	query := `
		SELECT
			category,
			COUNT(*) AS total_items,
			COALESCE(SUM(quantity), 0) AS total_quantity
		FROM waste
		GROUP BY category
		ORDER BY total_items DESC, category ASC
	`
	if err := db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get waste statistics: %w", err)
	}
	return stats, nil
}
