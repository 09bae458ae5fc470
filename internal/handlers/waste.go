package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

// ListWaste supports ?category= and ?statistics
func ListWaste(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		if category == "" && wantsStatistics(r) {
			respondWasteStatistics(w, r, db)
			return
		}

		records, err := database.ListWaste(r.Context(), db, category)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch waste records")
			return
		}
		responses := make([]models.WasteResponse, len(records))
		for i := range records {
			responses[i] = records[i].ToResponse()
		}
		utils.RespondData(w, http.StatusOK, responses)
	}
}

func GetWaste(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		record, err := database.GetWaste(r.Context(), db, id)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch waste record")
			return
		}
		utils.RespondData(w, http.StatusOK, record.ToResponse())
	}
}

func WasteStatistics(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWasteStatistics(w, r, db)
	}
}

func respondWasteStatistics(w http.ResponseWriter, r *http.Request, db *sqlx.DB) {
	stats, err := database.GetWasteStatistics(r.Context(), db)
	if err != nil {
		respondStoreError(w, r, err, "Failed to fetch waste statistics")
		return
	}
	utils.RespondData(w, http.StatusOK, stats)
}

func bindWaste(w http.ResponseWriter, r *http.Request) (models.WasteRequest, bool) {
	var req models.WasteRequest
	if !decodeBody(w, r, &req) {
		return req, false
	}
	req.Normalize()
	return req, validateBody(w, &req)
}

func CreateWaste(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := bindWaste(w, r)
		if !ok {
			return
		}
		id, err := database.CreateWaste(r.Context(), db, req)
		if err != nil {
			respondStoreError(w, r, err, "Failed to create waste record")
			return
		}
		publish(events, "waste", "created", id)
		utils.RespondCreated(w, "Waste record created successfully", id)
	}
}

func UpdateWaste(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		req, ok := bindWaste(w, r)
		if !ok {
			return
		}
		if err := database.UpdateWaste(r.Context(), db, id, req); err != nil {
			respondStoreError(w, r, err, "Failed to update waste record")
			return
		}
		publish(events, "waste", "updated", id)
		utils.RespondMessage(w, "Waste record updated successfully")
	}
}

func DeleteWaste(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := database.DeleteWaste(r.Context(), db, id); err != nil {
			respondStoreError(w, r, err, "Failed to delete waste record")
			return
		}
		publish(events, "waste", "deleted", id)
		utils.RespondMessage(w, "Waste record deleted successfully")
	}
}
