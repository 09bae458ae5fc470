package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

const paymentSelect = `SELECT p.payment_id, p.amount, p.payment_method, p.bill_id, p.created_at,
		b.citizen_id, c.name AS citizen_name
	FROM payments p
	LEFT JOIN bills b ON b.bill_id = p.bill_id
	LEFT JOIN citizens c ON c.citizen_id = b.citizen_id`

func ListPayments(ctx context.Context, db *sqlx.DB, billID *int64) ([]models.Payment, error) {
	payments := []models.Payment{}
	query := paymentSelect
	args := []interface{}{}
	if billID != nil {
		query += ` WHERE p.bill_id = ?`
		args = append(args, *billID)
	}
	query += ` ORDER BY p.payment_id DESC`

	if err := db.SelectContext(ctx, &payments, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func GetPayment(ctx context.Context, db *sqlx.DB, id int64) (*models.Payment, error) {
	var payment models.Payment
	if err := getOne(ctx, db, &payment, "Payment", paymentSelect+` WHERE p.payment_id = ?`, id); err != nil {
		return nil, err
	}
	return &payment, nil
}

// CreatePayment records the payment and marks its bill Paid in one transaction
func CreatePayment(ctx context.Context, db *sqlx.DB, req models.PaymentRequest) (int64, error) {
	billID := int64(req.BillID)
	if err := checkReferences(ctx, db, billRef(billID)); err != nil {
		return 0, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := insertReturningID(ctx, tx,
		`INSERT INTO payments (amount, payment_method, bill_id, created_at)
		 VALUES (?, ?, ?, ?) RETURNING payment_id`,
		float64(req.Amount), req.PaymentMethod, billID, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create payment: %w", err)
	}

	// The bill may have been deleted since the reference check
	if err := execAffecting(ctx, tx, "Bill",
		`UPDATE bills SET status = ? WHERE bill_id = ?`,
		models.BillStatusPaid, billID,
	); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	utils.Logger.Infof("✅ Payment %d recorded, bill %d marked Paid", id, billID)
	return id, nil
}

func GetPaymentStatistics(ctx context.Context, db *sqlx.DB) (*models.PaymentStatistics, error) {
	var stats models.PaymentStatistics
	query := `
		SELECT
			COUNT(*) AS total_payments,
			COALESCE(SUM(amount), 0) AS total_received,
			COALESCE(AVG(amount), 0) AS average_payment
		FROM payments
	`
	if err := db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get payment statistics: %w", err)
	}
	return &stats, nil
}
