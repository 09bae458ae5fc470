package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"waste-management-backend/internal/config"
	"waste-management-backend/internal/database"
	"waste-management-backend/pkg/utils"
)

// migrate creates or upgrades the schema and prints a row count summary
func main() {
	cfg, err := config.Load()
	utils.InitLogger("waste-management-migrate", os.Getenv("LOG_LEVEL"))
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
	utils.Logger.Info("Migration completed successfully!")

	counts, err := database.CountRows(context.Background(), db)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to query summary")
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\n============================================================")
	fmt.Println("MIGRATION SUMMARY")
	fmt.Println("============================================================")
	for _, name := range names {
		fmt.Printf("%-20s %d\n", name+":", counts[name])
	}
	fmt.Println("============================================================")
}
