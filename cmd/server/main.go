package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waste-management-backend/internal/config"
	"waste-management-backend/internal/database"
	"waste-management-backend/internal/jobs"
	"waste-management-backend/internal/server"
	"waste-management-backend/internal/services"
	"waste-management-backend/internal/websocket"
	"waste-management-backend/pkg/utils"
)

const appName = "waste-management"

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.InitLogger(appName, "")
		utils.Logger.WithError(err).Fatal("❌ FATAL ERROR: invalid configuration")
	}
	utils.InitLogger(appName, cfg.LogLevel)

	utils.Logger.Info("═══════════════════════════════════════════════════════════════════")
	utils.Logger.Info("🚀 WASTE MANAGEMENT API STARTING")
	utils.Logger.Info("═══════════════════════════════════════════════════════════════════")

	db, err := database.Connect(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		utils.Logger.WithError(err).Fatal("❌ FATAL ERROR: Database connection failed")
	}
	defer db.Close()

	utils.Logger.Info("🔄 Running database migrations...")
	if err := database.Migrate(db); err != nil {
		utils.Logger.WithError(err).Fatal("❌ FATAL ERROR: Database migrations failed")
	}
	utils.Logger.Info("✅ Database migrations completed")

	ctx := context.Background()
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := database.SeedAdmin(ctx, db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			utils.Logger.WithError(err).Fatal("❌ FATAL ERROR: Admin seeding failed")
		}
	}
	if cfg.SeedDemoData {
		utils.Logger.Info("🌱 Seeding database with demo data...")
		if err := database.SeedDemoData(ctx, db); err != nil {
			utils.Logger.WithError(err).Fatal("❌ FATAL ERROR: Demo data seeding failed")
		}
	}

	deps := server.Deps{DB: db, Config: cfg}

	// Push alerts are optional
	fcmService, err := services.NewFCMServiceFromConfig(cfg.FirebaseCredentialsBase64, cfg.FirebaseCredentialsFile)
	switch {
	case err != nil:
		utils.Logger.WithError(err).Warn("⚠️  Failed to initialize FCM (bin alerts disabled)")
	case fcmService == nil:
		utils.Logger.Info("⏭️  Firebase credentials not set (bin alerts disabled)")
	default:
		deps.Alerter = fcmService
		utils.Logger.Info("✅ Firebase Cloud Messaging initialized")
	}

	deps.Hub = websocket.NewHub()
	go deps.Hub.Run()
	defer deps.Hub.Stop()
	utils.Logger.Info("✅ WebSocket hub started")

	sweeper, err := jobs.Start(db, cfg.OverdueSweepSchedule)
	if err != nil {
		utils.Logger.WithError(err).Fatal("❌ FATAL ERROR: Overdue sweep scheduling failed")
	}
	if sweeper != nil {
		defer sweeper.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Logger.Info("═══════════════════════════════════════════════════════════════════")
		utils.Logger.Info("✅ ALL INITIALIZATION COMPLETE")
		utils.Logger.Infof("🚀 Server starting on http://localhost:%s", cfg.Port)
		utils.Logger.Info("═══════════════════════════════════════════════════════════════════")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Logger.WithError(err).Fatal("❌ FATAL ERROR: Server failed to start")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	utils.Logger.Info("🛑 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Logger.WithError(err).Error("❌ Graceful shutdown failed")
	}
}
