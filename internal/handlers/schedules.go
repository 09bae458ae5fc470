package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

func ListSchedules(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaID, ok := queryID(w, r, "area_id")
		if !ok {
			return
		}
		schedules, err := database.ListSchedules(r.Context(), db, areaID)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch schedules")
			return
		}
		utils.RespondData(w, http.StatusOK, schedules)
	}
}

func GetSchedule(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		schedule, err := database.GetSchedule(r.Context(), db, id)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch schedule")
			return
		}
		utils.RespondData(w, http.StatusOK, schedule)
	}
}

func CreateSchedule(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ScheduleRequest
		if !bindBody(w, r, &req) {
			return
		}
		id, err := database.CreateSchedule(r.Context(), db, req)
		if err != nil {
			respondStoreError(w, r, err, "Failed to create schedule")
			return
		}
		publish(events, "schedules", "created", id)
		utils.RespondCreated(w, "Schedule created successfully", id)
	}
}

func UpdateSchedule(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var req models.ScheduleRequest
		if !bindBody(w, r, &req) {
			return
		}
		if err := database.UpdateSchedule(r.Context(), db, id, req); err != nil {
			respondStoreError(w, r, err, "Failed to update schedule")
			return
		}
		publish(events, "schedules", "updated", id)
		utils.RespondMessage(w, "Schedule updated successfully")
	}
}

func DeleteSchedule(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := database.DeleteSchedule(r.Context(), db, id); err != nil {
			respondStoreError(w, r, err, "Failed to delete schedule")
			return
		}
		publish(events, "schedules", "deleted", id)
		utils.RespondMessage(w, "Schedule deleted successfully")
	}
}
