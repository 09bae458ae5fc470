package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"waste-management-backend/pkg/utils"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Connect opens and pings the database. driver is "postgres" or "sqlite".
func Connect(driver, dsn string) (*sqlx.DB, error) {
	utils.Logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	utils.Logger.Infof("🔌 DATABASE CONNECTION ATTEMPT (driver: %s)", driver)
	utils.Logger.Debugf("   📍 DSN prefix: %s...", dsn[:min(30, len(dsn))])

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		utils.Logger.WithError(err).Error("❌ DATABASE CONNECTION FAILED AT sqlx.Connect()")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// An in-memory database exists per connection, and the pragma is per connection too.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		utils.Logger.WithError(err).Error("❌ DATABASE CONNECTION FAILED AT Ping()")
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	utils.Logger.Info("✅ DATABASE CONNECTION SUCCESSFUL")
	utils.Logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	return db, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Tables lists every application table in creation order.
var Tables = []string{
	"users",
	"areas",
	"citizens",
	"bills",
	"payments",
	"waste",
	"bins",
	"collection_schedules",
	"crew",
	"recycling_centers",
}

func Migrate(db *sqlx.DB) error {
	pk := "SERIAL PRIMARY KEY"
	if db.DriverName() != DriverPostgres {
		pk = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	migrations := []string{
		// Admin accounts
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL,
			role TEXT NOT NULL CHECK(role IN ('admin', 'viewer')),
			created_at BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS areas (
			area_id {{pk}},
			area_name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at BIGINT NOT NULL
		)`,

		// Citizens are protected by the area delete guard, so no cascade here
		`CREATE TABLE IF NOT EXISTS citizens (
			citizen_id {{pk}},
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			contact TEXT NOT NULL DEFAULT '',
			area_id INTEGER NOT NULL REFERENCES areas(area_id),
			created_at BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS bills (
			bill_id {{pk}},
			status TEXT NOT NULL CHECK(status IN ('Pending', 'Paid', 'Overdue')),
			amount DOUBLE PRECISION NOT NULL,
			due_date TEXT NOT NULL,
			citizen_id INTEGER NOT NULL REFERENCES citizens(citizen_id),
			created_at BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS payments (
			payment_id {{pk}},
			amount DOUBLE PRECISION NOT NULL,
			payment_method TEXT NOT NULL,
			bill_id INTEGER NOT NULL REFERENCES bills(bill_id) ON DELETE CASCADE,
			created_at BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS waste (
			waste_id {{pk}},
			category TEXT NOT NULL,
			quantity DOUBLE PRECISION NOT NULL,
			citizen_id INTEGER NOT NULL REFERENCES citizens(citizen_id) ON DELETE CASCADE,
			area_id INTEGER NOT NULL REFERENCES areas(area_id) ON DELETE CASCADE,
			collection_date TEXT,
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS bins (
			bin_id {{pk}},
			status TEXT NOT NULL DEFAULT 'Active',
			fill_level DOUBLE PRECISION NOT NULL DEFAULT 0,
			sensor TEXT,
			area_id INTEGER NOT NULL REFERENCES areas(area_id) ON DELETE CASCADE,
			created_at BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS collection_schedules (
			schedule_id {{pk}},
			schedule_date TEXT NOT NULL,
			area_id INTEGER NOT NULL REFERENCES areas(area_id) ON DELETE CASCADE,
			created_at BIGINT NOT NULL
		)`,

		// schedule_id and team_id may hold configured defaults, so they are not foreign keys
		`CREATE TABLE IF NOT EXISTS crew (
			crew_id {{pk}},
			crew_name TEXT NOT NULL,
			contact TEXT NOT NULL DEFAULT '',
			area_id INTEGER NOT NULL REFERENCES areas(area_id) ON DELETE CASCADE,
			schedule_id INTEGER NOT NULL,
			team_id INTEGER NOT NULL,
			created_at BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS recycling_centers (
			center_id {{pk}},
			location TEXT NOT NULL,
			capacity DOUBLE PRECISION NOT NULL,
			operating_hours TEXT NOT NULL DEFAULT '',
			waste_id INTEGER REFERENCES waste(waste_id) ON DELETE SET NULL,
			created_at BIGINT NOT NULL
		)`,

		// Indexes for the filtered list endpoints
		`CREATE INDEX IF NOT EXISTS idx_citizens_area ON citizens(area_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bills_citizen ON bills(citizen_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bills_status_due ON bills(status, due_date)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_bill ON payments(bill_id)`,
		`CREATE INDEX IF NOT EXISTS idx_waste_category ON waste(category)`,
		`CREATE INDEX IF NOT EXISTS idx_bins_area ON bins(area_id)`,
		`CREATE INDEX IF NOT EXISTS idx_schedules_area ON collection_schedules(area_id)`,
		`CREATE INDEX IF NOT EXISTS idx_crew_area ON crew(area_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(strings.ReplaceAll(migration, "{{pk}}", pk)); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	utils.Logger.Info("✓ Database migrations completed")
	return nil
}
