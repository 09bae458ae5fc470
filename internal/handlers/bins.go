package handlers

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

// BinAlerter pushes a notification when a bin crosses the alert threshold.
type BinAlerter interface {
	SendBinFullAlert(ctx context.Context, bin models.Bin) error
}

// BinAlerts carries the optional alerter and the fill level that triggers it.
type BinAlerts struct {
	Alerter   BinAlerter
	Threshold float64
}

// notify is best effort: a failed push never fails the write
func (a BinAlerts) notify(ctx context.Context, db *sqlx.DB, binID int64) {
	if a.Alerter == nil {
		return
	}
	bin, err := database.GetBin(ctx, db, binID)
	if err != nil {
		utils.Logger.WithError(err).Warnf("⚠️  Could not load bin %d for alerting", binID)
		return
	}
	if bin.FillLevel < a.Threshold {
		return
	}
	if err := a.Alerter.SendBinFullAlert(ctx, *bin); err != nil {
		utils.Logger.WithError(err).Warnf("⚠️  Bin %d full alert failed", binID)
		return
	}
	utils.Logger.Infof("📣 Bin %d full alert sent (fill level %.0f)", binID, bin.FillLevel)
}

// ListBins supports ?area_id= and ?statistics
func ListBins(db *sqlx.DB, alerts BinAlerts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaID, ok := queryID(w, r, "area_id")
		if !ok {
			return
		}
		if areaID == nil && wantsStatistics(r) {
			stats, err := database.GetBinStatistics(r.Context(), db, alerts.Threshold)
			if err != nil {
				respondStoreError(w, r, err, "Failed to fetch bin statistics")
				return
			}
			utils.RespondData(w, http.StatusOK, stats)
			return
		}

		bins, err := database.ListBins(r.Context(), db, areaID)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch bins")
			return
		}
		responses := make([]models.BinResponse, len(bins))
		for i := range bins {
			responses[i] = bins[i].ToResponse()
		}
		utils.RespondData(w, http.StatusOK, responses)
	}
}

func GetBin(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		bin, err := database.GetBin(r.Context(), db, id)
		if err != nil {
			respondStoreError(w, r, err, "Failed to fetch bin")
			return
		}
		utils.RespondData(w, http.StatusOK, bin.ToResponse())
	}
}

func CreateBin(db *sqlx.DB, events Broadcaster, alerts BinAlerts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BinRequest
		if !bindBody(w, r, &req) {
			return
		}
		id, err := database.CreateBin(r.Context(), db, req)
		if err != nil {
			respondStoreError(w, r, err, "Failed to create bin")
			return
		}
		publish(events, "bins", "created", id)
		if req.FillLevel != nil {
			alerts.notify(r.Context(), db, id)
		}
		utils.RespondCreated(w, "Bin created successfully", id)
	}
}

// UpdateBin is a full update when the body carries "status", otherwise a
// fill level update
func UpdateBin(db *sqlx.DB, events Broadcaster, alerts BinAlerts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var req models.BinRequest
		if !decodeBody(w, r, &req) {
			return
		}

		message := "Bin updated successfully"
		if req.Status != nil {
			if !validateBody(w, &req) {
				return
			}
			if err := database.UpdateBin(r.Context(), db, id, req); err != nil {
				respondStoreError(w, r, err, "Failed to update bin")
				return
			}
		} else {
			fill := models.BinFillLevelRequest{FillLevel: req.FillLevel}
			if !validateBody(w, &fill) {
				return
			}
			if err := database.UpdateBinFillLevel(r.Context(), db, id, float64(*fill.FillLevel)); err != nil {
				respondStoreError(w, r, err, "Failed to update bin")
				return
			}
			message = "Bin fill level updated successfully"
		}

		publish(events, "bins", "updated", id)
		if req.FillLevel != nil {
			alerts.notify(r.Context(), db, id)
		}
		utils.RespondMessage(w, message)
	}
}

func DeleteBin(db *sqlx.DB, events Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := database.DeleteBin(r.Context(), db, id); err != nil {
			respondStoreError(w, r, err, "Failed to delete bin")
			return
		}
		publish(events, "bins", "deleted", id)
		utils.RespondMessage(w, "Bin deleted successfully")
	}
}
