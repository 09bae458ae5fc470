package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

// ListPayments supports ?bill_id= and ?statistics
func ListPayments(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		billID, ok := queryID(w, r, "bill_id")
		if !ok {
			return
		}
		if billID == nil && wantsStatistics(r) {
			respondPaymentStatistics(w, r, db)
			return
		}

		payments, err := database.ListPayments(r.Context(), db, billID)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch payments")
			return
		}
		utils.RespondData(w, http.StatusOK, payments)
	}
}

func GetPayment(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		payment, err := database.GetPayment(r.Context(), db, id)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch payment")
			return
		}
		utils.RespondData(w, http.StatusOK, payment)
	}
}

func PaymentStatistics(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondPaymentStatistics(w, r, db)
	}
}

func respondPaymentStatistics(w http.ResponseWriter, r *http.Request, db *sqlx.DB) {
	stats, err := database.GetPaymentStatistics(r.Context(), db)
	if err != nil {
		respondStoreError(w, r, err, "Failed to fetch payment statistics")
		return
	}
	utils.RespondData(w, http.StatusOK, stats)
}

// CreatePayment also marks the bill Paid, so both entities are announced
func CreatePayment(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PaymentRequest
		if !bindBody(w, r, &req) {
			return
		}
		id, err := database.CreatePayment(r.Context(), db, req)
		if err != nil {
			respondStoreError(w, r, err, "Failed to record payment")
			return
		}
		publish(events, "payments", "created", id)
		publish(events, "bills", "updated", int64(req.BillID))
		utils.RespondCreated(w, "Payment recorded successfully", id)
	}
}
