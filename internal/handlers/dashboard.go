package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/database"
	"waste-management-backend/pkg/utils"
)

// Dashboard aggregates every statistics block in one response
func Dashboard(db *sqlx.DB, criticalLevel float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := database.GetDashboardSummary(r.Context(), db, criticalLevel)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch dashboard")
			return
		}
		utils.RespondData(w, http.StatusOK, summary)
	}
}
