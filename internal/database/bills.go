package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
)

const billSelect = `SELECT b.bill_id, b.status, b.amount, b.due_date, b.citizen_id, b.created_at, c.name AS citizen_name
	FROM bills b
	LEFT JOIN citizens c ON c.citizen_id = b.citizen_id`

func ListBills(ctx context.Context, db *sqlx.DB, citizenID *int64) ([]models.Bill, error) {
	bills := []models.Bill{}
	query := billSelect
	args := []interface{}{}
	if citizenID != nil {
		query += ` WHERE b.citizen_id = ?`
		args = append(args, *citizenID)
	}
	query += ` ORDER BY b.bill_id DESC`

	if err := db.SelectContext(ctx, &bills, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func GetBill(ctx context.Context, db *sqlx.DB, id int64) (*models.Bill, error) {
	var bill models.Bill
	if err := getOne(ctx, db, &bill, "Bill", billSelect+` WHERE b.bill_id = ?`, id); err != nil {
		return nil, err
	}
	return &bill, nil
}

func CreateBill(ctx context.Context, db *sqlx.DB, req models.BillRequest) (int64, error) {
	if err := checkReferences(ctx, db, citizenRef(int64(req.CitizenID))); err != nil {
		return 0, err
	}
	id, err := insertReturningID(ctx, db,
		`INSERT INTO bills (status, amount, due_date, citizen_id, created_at)
		 VALUES (?, ?, ?, ?, ?) RETURNING bill_id`,
		req.Status, float64(req.Amount), req.DueDate, int64(req.CitizenID), time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create bill: %w", err)
	}
	return id, nil
}

func UpdateBillStatus(ctx context.Context, db *sqlx.DB, id int64, status string) error {
	return execAffecting(ctx, db, "Bill", `UPDATE bills SET status = ? WHERE bill_id = ?`, status, id)
}

// DeleteBill removes the bill and, through the foreign key, its payments
func DeleteBill(ctx context.Context, db *sqlx.DB, id int64) error {
	if _, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM bills WHERE bill_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	return nil
}

func GetBillStatistics(ctx context.Context, db *sqlx.DB) (*models.BillStatistics, error) {
	var stats models.BillStatistics
	query := `
		SELECT
			COUNT(*) AS total_bills,
			COALESCE(SUM(amount), 0) AS total_amount,
			COUNT(CASE WHEN status = 'Paid' THEN 1 END) AS paid_count,
			COUNT(CASE WHEN status = 'Pending' THEN 1 END) AS pending_count,
			COUNT(CASE WHEN status = 'Overdue' THEN 1 END) AS overdue_count
		FROM bills
	`
	if err := db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get bill statistics: %w", err)
	}
	return &stats, nil
}

// MarkOverdueBills flips Pending bills due before today (YYYY-MM-DD) to Overdue
func MarkOverdueBills(ctx context.Context, db *sqlx.DB, today string) (int64, error) {
	res, err := db.ExecContext(ctx,
		db.Rebind(`UPDATE bills SET status = ? WHERE status = ? AND due_date < ?`),
		models.BillStatusOverdue, models.BillStatusPending, today,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue bills: %w", err)
	}
	return res.RowsAffected()
}
