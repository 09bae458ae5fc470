package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/pkg/utils"
)

const apiVersion = "1.0"

var endpoints = []string{
	"/areas",
	"/citizens",
	"/bills",
	"/payments",
	"/waste",
	"/bins",
	"/crew",
	"/schedules",
	"/centers",
	"/dashboard",
}

// Index describes the API
func Index(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Waste Management API",
		"version":   apiVersion,
		"endpoints": endpoints,
	})
}

// Health pings the database
func Health(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			utils.Logger.WithError(err).Error("❌ Health check failed")
			utils.RespondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"success":  false,
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"status":   "ok",
			"database": "ok",
		})
	}
}
