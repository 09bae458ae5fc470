package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

func ListCrew(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaID, ok := queryID(w, r, "area_id")
		if !ok {
			return
		}
		crew, err := database.ListCrew(r.Context(), db, areaID)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch crew")
			return
		}
		utils.RespondData(w, http.StatusOK, crew)
	}
}

func GetCrew(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		member, err := database.GetCrew(r.Context(), db, id)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch crew member")
			return
		}
		utils.RespondData(w, http.StatusOK, member)
	}
}

func CreateCrew(db *sqlx.DB, events Broadcaster, defaults database.CrewDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateCrewRequest
		if !bindBody(w, r, &req) {
			return
		}
		id, err := database.CreateCrew(r.Context(), db, req, defaults)
		if err != nil {
			respondStoreError(w, r, err, "Failed to create crew member")
			return
		}
		publish(events, "crew", "created", id)
		utils.RespondCreated(w, "Crew member created successfully", id)
	}
}

func UpdateCrew(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var req models.UpdateCrewRequest
		if !bindBody(w, r, &req) {
			return
		}
		if err := database.UpdateCrew(r.Context(), db, id, req); err != nil {
			respondStoreError(w, r, err, "Failed to update crew member")
			return
		}
		publish(events, "crew", "updated", id)
		utils.RespondMessage(w, "Crew member updated successfully")
	}
}

func DeleteCrew(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := database.DeleteCrew(r.Context(), db, id); err != nil {
			respondStoreError(w, r, err, "Failed to delete crew member")
			return
		}
		publish(events, "crew", "deleted", id)
		utils.RespondMessage(w, "Crew member deleted successfully")
	}
}
