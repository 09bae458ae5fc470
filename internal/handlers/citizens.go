package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

// ListCitizens supports ?area_id=
func ListCitizens(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaID, ok := queryID(w, r, "area_id")
		if !ok {
			return
		}
		citizens, err := database.ListCitizens(r.Context(), db, areaID)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch citizens")
			return
		}
		utils.RespondData(w, http.StatusOK, citizens)
	}
}

func GetCitizen(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		citizen, err := database.GetCitizen(r.Context(), db, id)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch citizen")
			return
		}
		utils.RespondData(w, http.StatusOK, citizen)
	}
}

func CreateCitizen(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CitizenRequest
		if !bindBody(w, r, &req) {
			return
		}
		id, err := database.CreateCitizen(r.Context(), db, req)
		if err != nil {
			respondStoreError(w, r, err, "Failed to create citizen")
			return
		}
		publish(events, "citizens", "created", id)
		utils.RespondCreated(w, "Citizen created successfully", id)
	}
}

func UpdateCitizen(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var req models.CitizenRequest
		if !bindBody(w, r, &req) {
			return
		}
		if err := database.UpdateCitizen(r.Context(), db, id, req); err != nil {
			respondStoreError(w, r, err, "Failed to update citizen")
			return
		}
		publish(events, "citizens", "updated", id)
		utils.RespondMessage(w, "Citizen updated successfully")
	}
}

func DeleteCitizen(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := database.DeleteCitizen(r.Context(), db, id); err != nil {
			respondStoreError(w, r, err, "Failed to delete citizen")
			return
		}
		publish(events, "citizens", "deleted", id)
		utils.RespondMessage(w, "Citizen deleted successfully")
	}
}
