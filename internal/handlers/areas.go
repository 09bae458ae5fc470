package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

func ListAreas(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areas, err := database.ListAreas(r.Context(), db)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch areas")
			return
		}
		utils.RespondData(w, http.StatusOK, areas)
	}
}

func GetArea(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		area, err := database.GetArea(r.Context(), db, id)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch area")
			return
		}
		utils.RespondData(w, http.StatusOK, area)
	}
}

func CreateArea(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AreaRequest
		if !bindBody(w, r, &req) {
			return
		}
		id, err := database.CreateArea(r.Context(), db, req)
		if err != nil {
			respondStoreError(w, r, err, "Failed to create area")
			return
		}
		utils.Logger.Infof("✅ Area created: %d (%s)", id, req.AreaName)
		publish(events, "areas", "created", id)
		utils.RespondCreated(w, "Area created successfully", id)
	}
}

func UpdateArea(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var req models.AreaRequest
		if !bindBody(w, r, &req) {
			return
		}
		if err := database.UpdateArea(r.Context(), db, id, req); err != nil {
			respondStoreError(w, r, err, "Failed to update area")
			return
		}
		publish(events, "areas", "updated", id)
		utils.RespondMessage(w, "Area updated successfully")
	}
}

func DeleteArea(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := database.DeleteArea(r.Context(), db, id); err != nil {
			respondStoreError(w, r, err, "Failed to delete area")
			return
		}
		publish(events, "areas", "deleted", id)
		utils.RespondMessage(w, "Area deleted successfully")
	}
}
