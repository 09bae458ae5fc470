package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
)

const binSelect = `SELECT b.bin_id, b.status, b.fill_level, b.sensor, b.area_id, b.created_at, a.area_name
	FROM bins b
	LEFT JOIN areas a ON a.area_id = b.area_id`

func ListBins(ctx context.Context, db *sqlx.DB, areaID *int64) ([]models.Bin, error) {
	bins := []models.Bin{}
	query := binSelect
	args := []interface{}{}
	if areaID != nil {
		query += ` WHERE b.area_id = ?`
		args = append(args, *areaID)
	}
	query += ` ORDER BY b.bin_id DESC`

	if err := db.SelectContext(ctx, &bins, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list bins: %w", err)
	}
	return bins, nil
}

func GetBin(ctx context.Context, db *sqlx.DB, id int64) (*models.Bin, error) {
	var bin models.Bin
	if err := getOne(ctx, db, &bin, "Bin", binSelect+` WHERE b.bin_id = ?`, id); err != nil {
		return nil, err
	}
	return &bin, nil
}

// CreateBin defaults status to Active and fill level to 0
func CreateBin(ctx context.Context, db *sqlx.DB, req models.BinRequest) (int64, error) {
	if err := checkReferences(ctx, db, areaRef(int64(req.AreaID))); err != nil {
		return 0, err
	}

	status := models.BinStatusActive
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}
	var fillLevel float64
	if req.FillLevel != nil {
		fillLevel = float64(*req.FillLevel)
	}

	id, err := insertReturningID(ctx, db,
		`INSERT INTO bins (status, fill_level, sensor, area_id, created_at)
		 VALUES (?, ?, ?, ?, ?) RETURNING bin_id`,
		status, fillLevel, nullString(req.Sensor), int64(req.AreaID), time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create bin: %w", err)
	}
	return id, nil
}

// UpdateBin replaces status, area and sensor. An omitted fill level keeps the stored one.
func UpdateBin(ctx context.Context, db *sqlx.DB, id int64, req models.BinRequest) error {
	if err := checkReferences(ctx, db, areaRef(int64(req.AreaID))); err != nil {
		return err
	}

	status := models.BinStatusActive
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	query := `UPDATE bins SET status = ?, sensor = ?, area_id = ?`
	args := []interface{}{status, nullString(req.Sensor), int64(req.AreaID)}
	if req.FillLevel != nil {
		query += `, fill_level = ?`
		args = append(args, float64(*req.FillLevel))
	}
	query += ` WHERE bin_id = ?`
	args = append(args, id)

	return execAffecting(ctx, db, "Bin", query, args...)
}

func UpdateBinFillLevel(ctx context.Context, db *sqlx.DB, id int64, fillLevel float64) error {
	return execAffecting(ctx, db, "Bin", `UPDATE bins SET fill_level = ? WHERE bin_id = ?`, fillLevel, id)
}

func DeleteBin(ctx context.Context, db *sqlx.DB, id int64) error {
	if _, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM bins WHERE bin_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete bin: %w", err)
	}
	return nil
}

// GetBinStatistics counts bins at or above criticalLevel as critical
func GetBinStatistics(ctx context.Context, db *sqlx.DB, criticalLevel float64) (*models.BinStatistics, error) {
	var stats models.BinStatistics
	query := `
		SELECT
			COUNT(*) AS total_bins,
			COALESCE(AVG(fill_level), 0) AS average_fill_level,
			COUNT(CASE WHEN fill_level >= ? THEN 1 END) AS critical_bins,
			COUNT(CASE WHEN fill_level < 100 THEN 1 END) AS fillable_bins
		FROM bins
	`
	if err := db.GetContext(ctx, &stats, db.Rebind(query), criticalLevel); err != nil {
		return nil, fmt.Errorf("failed to get bin statistics: %w", err)
	}
	return &stats, nil
}
