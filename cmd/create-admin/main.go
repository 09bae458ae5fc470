package main

import (
	"context"
	"flag"
	"os"

	"waste-management-backend/internal/config"
	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

// create-admin adds a dashboard administrator:
//
//	go run ./cmd/create-admin -email ops@example.com -password secret -name "Ops"
func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	name := flag.String("name", "Administrator", "display name")
	flag.Parse()

	utils.InitLogger("waste-management-admin", os.Getenv("LOG_LEVEL"))
	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		utils.Logger.WithError(err).Fatal("Invalid configuration")
	}

	db, err := database.Connect(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		utils.Logger.WithError(err).Fatal("Migration failed")
	}

	ctx := context.Background()
	exists, err := database.UserExists(ctx, db, *email)
	if err != nil {
		utils.Logger.WithError(err).Fatal("❌ Error checking for user")
	}
	if exists {
		utils.Logger.Warnf("⚠️  User already exists: %s", *email)
		return
	}

	if _, err := database.CreateUser(ctx, db, *email, *password, *name, models.RoleAdmin); err != nil {
		utils.Logger.WithError(err).Fatal("❌ Failed to create user")
	}
	utils.Logger.Infof("✅ Created admin user: %s", *email)
}
