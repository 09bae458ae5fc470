package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"

	"waste-management-backend/internal/database"
	"waste-management-backend/pkg/utils"
)

// SweepTimeout bounds a single overdue sweep
const SweepTimeout = 2 * time.Minute

// MarkOverdueBills flips Pending bills due before today to Overdue
func MarkOverdueBills(ctx context.Context, db *sqlx.DB, today time.Time) (int64, error) {
	n, err := database.MarkOverdueBills(ctx, db, today.Format("2006-01-02"))
	if err != nil {
		return 0, fmt.Errorf("overdue sweep: %w", err)
	}
	return n, nil
}

// Start schedules the overdue sweep. An empty spec disables it and returns nil.
func Start(db *sqlx.DB, spec string) (*cron.Cron, error) {
	if spec == "" {
		utils.Logger.Info("⏭️  Overdue sweep disabled (OVERDUE_SWEEP_SCHEDULE not set)")
		return nil, nil
	}

	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), SweepTimeout)
		defer cancel()

		utils.Logger.Info("🧾 Starting overdue bill sweep...")
		n, err := MarkOverdueBills(ctx, db, time.Now().UTC())
		if err != nil {
			utils.Logger.WithError(err).Error("❌ Overdue bill sweep failed")
			return
		}
		utils.Logger.Infof("✅ Overdue bill sweep marked %d bills", n)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid overdue sweep schedule %q: %w", spec, err)
	}

	c.Start()
	utils.Logger.Infof("⏰ Overdue sweep scheduled: %s", spec)
	return c, nil
}
