package database_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/internal/testutil"
)

func createWaste(t *testing.T, db *sqlx.DB, req models.WasteRequest) int64 {
	t.Helper()
	req.Normalize()
	id, err := database.CreateWaste(ctx, db, req)
	require.NoError(t, err)
	return id
}

func TestWasteCategoryFilterAndStatistics(t *testing.T) {
	db := testutil.NewDB(t)
	areaID := mustArea(t, db, "Area")
	citizenID := mustCitizen(t, db, "Sorter", areaID)

	for _, category := range []string{"Paper", "Plastic", "Plastic", "Glass", "Plastic", "Paper"} {
		createWaste(t, db, models.WasteRequest{
			Category:  category,
			Quantity:  2,
			CitizenID: models.FlexInt(citizenID),
			AreaID:    models.FlexInt(areaID),
		})
	}

	plastic, err := database.ListWaste(ctx, db, "Plastic")
	require.NoError(t, err)
	assert.Len(t, plastic, 3)
	assert.Greater(t, plastic[0].WasteID, plastic[1].WasteID)
	require.NotNil(t, plastic[0].AreaName)
	assert.Equal(t, "Area", *plastic[0].AreaName)
	require.NotNil(t, plastic[0].CitizenName)
	assert.Equal(t, "Sorter", *plastic[0].CitizenName)

	stats, err := database.GetWasteStatistics(ctx, db)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, "Plastic", stats[0].Category)
	assert.EqualValues(t, 3, stats[0].TotalItems)
	assert.InDelta(t, 6, stats[0].TotalQuantity, 0.001)
	assert.Equal(t, "Paper", stats[1].Category)
	assert.Equal(t, "Glass", stats[2].Category)
}

func TestWasteDefaultsAndUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	areaID := mustArea(t, db, "Area")
	citizenID := mustCitizen(t, db, "Sorter", areaID)

	id := createWaste(t, db, models.WasteRequest{
		WasteType: "Organic",
		Quantity:  1.5,
		CitizenID: models.FlexInt(citizenID),
		AreaID:    models.FlexInt(areaID),
	})

	record, err := database.GetWaste(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, "Organic", record.Category)
	assert.Equal(t, models.WasteStatusPending, record.Status)
	assert.Nil(t, record.CollectionDate)

	req := models.WasteRequest{
		Category:       "Organic",
		Quantity:       3,
		CitizenID:      models.FlexInt(citizenID),
		AreaID:         models.FlexInt(areaID),
		CollectionDate: strPtr("2030-05-01"),
		Status:         "Collected",
	}
	require.NoError(t, database.UpdateWaste(ctx, db, id, req))

	record, err = database.GetWaste(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, "Collected", record.Status)
	require.NotNil(t, record.CollectionDate)
	assert.Equal(t, "2030-05-01", *record.CollectionDate)

	require.NoError(t, database.DeleteWaste(ctx, db, id))
	_, err = database.GetWaste(ctx, db, id)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
