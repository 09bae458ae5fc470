package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

// ListBills supports ?citizen_id= and ?statistics; the citizen filter wins
func ListBills(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		citizenID, ok := queryID(w, r, "citizen_id")
		if !ok {
			return
		}
		if citizenID == nil && wantsStatistics(r) {
			respondBillStatistics(w, r, db)
			return
		}

		bills, err := database.ListBills(r.Context(), db, citizenID)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch bills")
			return
		}
		utils.RespondData(w, http.StatusOK, bills)
	}
}

func GetBill(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		bill, err := database.GetBill(r.Context(), db, id)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch bill")
			return
		}
		utils.RespondData(w, http.StatusOK, bill)
	}
}

// BillStatistics serves /bills/{id}/statistics, which reports on all bills
func BillStatistics(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondBillStatistics(w, r, db)
	}
}

func respondBillStatistics(w http.ResponseWriter, r *http.Request, db *sqlx.DB) {
	stats, err := database.GetBillStatistics(r.Context(), db)
	if err != nil {
		respondStoreError(w, r, err, "Failed to fetch bill statistics")
		return
	}
	utils.RespondData(w, http.StatusOK, stats)
}

func CreateBill(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BillRequest
		if !bindBody(w, r, &req) {
			return
		}
		id, err := database.CreateBill(r.Context(), db, req)
		if err != nil {
			respondStoreError(w, r, err, "Failed to create bill")
			return
		}
		publish(events, "bills", "created", id)
		utils.RespondCreated(w, "Bill created successfully", id)
	}
}

// UpdateBillStatus serves PUT /bills/{id} and PUT /bills/{id}/status
func UpdateBillStatus(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var req models.BillStatusRequest
		if !bindBody(w, r, &req) {
			return
		}
		if err := database.UpdateBillStatus(r.Context(), db, id, req.Status); err != nil {
			respondStoreError(w, r, err, "Failed to update bill")
			return
		}
		publish(events, "bills", "updated", id)
		utils.RespondMessage(w, "Bill status updated successfully")
	}
}

func DeleteBill(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := database.DeleteBill(r.Context(), db, id); err != nil {
			respondStoreError(w, r, err, "Failed to delete bill")
			return
		}
		publish(events, "bills", "deleted", id)
		utils.RespondMessage(w, "Bill deleted successfully")
	}
}
