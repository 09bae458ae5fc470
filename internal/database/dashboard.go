package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
)

// entityTables are the tables counted on the dashboard, keyed by API collection name
var entityTables = map[string]string{
	"areas":             "areas",
	"citizens":          "citizens",
	"bills":             "bills",
	"payments":          "payments",
	"waste":             "waste",
	"bins":              "bins",
	"crew":              "crew",
	"schedules":         "collection_schedules",
	"recycling_centers": "recycling_centers",
}

// GetDashboardSummary collects every statistics block and per-table row counts
func GetDashboardSummary(ctx context.Context, db *sqlx.DB, criticalLevel float64) (*models.DashboardSummary, error) {
	bills, err := GetBillStatistics(ctx, db)
	if err != nil {
		return nil, err
	}
	payments, err := GetPaymentStatistics(ctx, db)
	if err != nil {
		return nil, err
	}
	waste, err := GetWasteStatistics(ctx, db)
	if err != nil {
		return nil, err
	}
	bins, err := GetBinStatistics(ctx, db, criticalLevel)
	if err != nil {
		return nil, err
	}

	counts, err := CountRows(ctx, db)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		Bills:    *bills,
		Payments: *payments,
		Waste:    waste,
		Bins:     *bins,
		Counts:   counts,
	}, nil
}

// CountRows returns the row count of every entity table
func CountRows(ctx context.Context, db *sqlx.DB) (map[string]int64, error) {
	counts := make(map[string]int64, len(entityTables))
	for name, table := range entityTables {
		n, err := countRows(ctx, db, `SELECT COUNT(*) FROM `+table)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[name] = n
	}
	return counts, nil
}
