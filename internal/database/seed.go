package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

// SeedAdmin creates the configured admin account unless it already exists
func SeedAdmin(ctx context.Context, db *sqlx.DB, email, password string) error {
	exists, err := UserExists(ctx, db, email)
	if err != nil {
		return err
	}
	if exists {
		utils.Logger.Infof("✓ Admin %s already exists, skipping...", email)
		return nil
	}

	if _, err := CreateUser(ctx, db, email, password, "Administrator", models.RoleAdmin); err != nil {
		return err
	}
	utils.Logger.Infof("✅ Created admin user: %s", email)
	return nil
}

// SeedDemoData fills an empty database with a small sample municipality
func SeedDemoData(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM areas"); err != nil {
		return err
	}
	if count > 0 {
		utils.Logger.Info("✓ Demo data already seeded, skipping...")
		return nil
	}

	utils.Logger.Info("🌱 Seeding demo data...")

	areas := []models.AreaRequest{
		{AreaName: "North District", Description: "Residential blocks north of the river"},
		{AreaName: "Market Square", Description: "Commercial center and weekly market"},
		{AreaName: "Industrial Park", Description: "Factories and warehouses"},
	}
	areaIDs := make([]int64, 0, len(areas))
	for _, a := range areas {
		id, err := CreateArea(ctx, db, a)
		if err != nil {
			return err
		}
		areaIDs = append(areaIDs, id)
	}

	citizens := []models.CitizenRequest{
		{Name: "Amina Yusuf", Address: "12 River Road", Contact: "555-0101", AreaID: models.FlexInt(areaIDs[0])},
		{Name: "Daniel Okafor", Address: "4 Hill Lane", Contact: "555-0102", AreaID: models.FlexInt(areaIDs[0])},
		{Name: "Grace Mensah", Address: "88 Market Street", Contact: "555-0103", AreaID: models.FlexInt(areaIDs[1])},
		{Name: "Tomas Silva", Address: "3 Foundry Way", Contact: "555-0104", AreaID: models.FlexInt(areaIDs[2])},
	}
	citizenIDs := make([]int64, 0, len(citizens))
	for _, c := range citizens {
		id, err := CreateCitizen(ctx, db, c)
		if err != nil {
			return err
		}
		citizenIDs = append(citizenIDs, id)
	}

	today := time.Now()
	for i, citizenID := range citizenIDs {
		status := models.BillStatusPending
		if i%2 == 1 {
			status = models.BillStatusPaid
		}
		if _, err := CreateBill(ctx, db, models.BillRequest{
			Status:    status,
			Amount:    models.FlexFloat(25 + 10*i),
			DueDate:   today.AddDate(0, 0, 14-7*i).Format("2006-01-02"),
			CitizenID: models.FlexInt(citizenID),
		}); err != nil {
			return err
		}
	}

	categories := []string{"Plastic", "Organic", "Paper", "Plastic"}
	for i, citizenID := range citizenIDs {
		date := today.AddDate(0, 0, i).Format("2006-01-02")
		req := models.WasteRequest{
			Category:       categories[i],
			Quantity:       models.FlexFloat(5 + 2*i),
			CitizenID:      models.FlexInt(citizenID),
			AreaID:         citizens[i].AreaID,
			CollectionDate: &date,
		}
		req.Normalize()
		if _, err := CreateWaste(ctx, db, req); err != nil {
			return err
		}
	}

	fillLevels := []float64{35, 62, 91}
	for i, areaID := range areaIDs {
		level := models.FlexFloat(fillLevels[i])
		sensor := fmt.Sprintf("SN-%03d", i+1)
		if _, err := CreateBin(ctx, db, models.BinRequest{
			AreaID:    models.FlexInt(areaID),
			FillLevel: &level,
			Sensor:    &sensor,
		}); err != nil {
			return err
		}

		if _, err := CreateSchedule(ctx, db, models.ScheduleRequest{
			ScheduleDate: today.AddDate(0, 0, i+1).Format("2006-01-02"),
			AreaID:       models.FlexInt(areaID),
		}); err != nil {
			return err
		}

		if _, err := CreateCrew(ctx, db, models.CreateCrewRequest{
			CrewName: fmt.Sprintf("Crew %c", 'A'+i),
			Contact:  fmt.Sprintf("555-02%02d", i+1),
			AreaID:   models.FlexInt(areaID),
		}, CrewDefaults{ScheduleID: 1, TeamID: int64(i + 1)}); err != nil {
			return err
		}
	}

	if _, err := CreateRecyclingCenter(ctx, db, models.RecyclingCenterRequest{
		Location:       "East Recycling Yard",
		Capacity:       500,
		OperatingHours: "Mon-Sat 08:00-17:00",
	}); err != nil {
		return err
	}

	utils.Logger.Infof("✅ Seeded %d areas, %d citizens", len(areaIDs), len(citizenIDs))
	return nil
}
