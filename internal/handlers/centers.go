package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

func ListRecyclingCenters(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		centers, err := database.ListRecyclingCenters(r.Context(), db)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch recycling centers")
			return
		}
		utils.RespondData(w, http.StatusOK, centers)
	}
}

func GetRecyclingCenter(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		center, err := database.GetRecyclingCenter(r.Context(), db, id)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch recycling center")
			return
		}
		utils.RespondData(w, http.StatusOK, center)
	}
}

func CreateRecyclingCenter(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RecyclingCenterRequest
		if !bindBody(w, r, &req) {
			return
		}
		id, err := database.CreateRecyclingCenter(r.Context(), db, req)
		if err != nil {
			respondStoreError(w, r, err, "Failed to create recycling center")
			return
		}
		publish(events, "centers", "created", id)
		utils.RespondCreated(w, "Recycling center created successfully", id)
	}
}

func UpdateRecyclingCenter(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var req models.RecyclingCenterRequest
		if !bindBody(w, r, &req) {
			return
		}
		if err := database.UpdateRecyclingCenter(r.Context(), db, id, req); err != nil {
			respondStoreError(w, r, err, "Failed to update recycling center")
			return
		}
		publish(events, "centers", "updated", id)
		utils.RespondMessage(w, "Recycling center updated successfully")
	}
}

func DeleteRecyclingCenter(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := database.DeleteRecyclingCenter(r.Context(), db, id); err != nil {
			respondStoreError(w, r, err, "Failed to delete recycling center")
			return
		}
		publish(events, "centers", "deleted", id)
		utils.RespondMessage(w, "Recycling center deleted successfully")
	}
}
