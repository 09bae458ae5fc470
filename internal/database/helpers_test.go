package database_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
)

var ctx = context.Background()

func mustArea(t *testing.T, db *sqlx.DB, name string) int64 {
	t.Helper()
	id, err := database.CreateArea(ctx, db, models.AreaRequest{AreaName: name})
	require.NoError(t, err)
	return id
}

func mustCitizen(t *testing.T, db *sqlx.DB, name string, areaID int64) int64 {
	t.Helper()
	id, err := database.CreateCitizen(ctx, db, models.CitizenRequest{
		Name:    name,
		Address: "1 Main St",
		AreaID:  models.FlexInt(areaID),
	})
	require.NoError(t, err)
	return id
}

func mustBill(t *testing.T, db *sqlx.DB, citizenID int64, status string, amount float64, due string) int64 {
	t.Helper()
	id, err := database.CreateBill(ctx, db, models.BillRequest{
		Status:    status,
		Amount:    models.FlexFloat(amount),
		DueDate:   due,
		CitizenID: models.FlexInt(citizenID),
	})
	require.NoError(t, err)
	return id
}

func flexFloat(v float64) *models.FlexFloat {
	f := models.FlexFloat(v)
	return &f
}

func flexInt(v int64) *models.FlexInt {
	i := models.FlexInt(v)
	return &i
}

func strPtr(s string) *string { return &s }
