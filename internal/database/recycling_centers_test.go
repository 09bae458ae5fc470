package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/internal/testutil"
)

func TestRecyclingCenterWasteLink(t *testing.T) {
	db := testutil.NewDB(t)
	areaID := mustArea(t, db, "Area")
	citizenID := mustCitizen(t, db, "Sorter", areaID)
	wasteID := createWaste(t, db, models.WasteRequest{
		Category: "Glass", Quantity: 1, CitizenID: models.FlexInt(citizenID), AreaID: models.FlexInt(areaID),
	})

	id, err := database.CreateRecyclingCenter(ctx, db, models.RecyclingCenterRequest{
		Location: "Depot", Capacity: 250, OperatingHours: "24/7", WasteID: flexInt(wasteID),
	})
	require.NoError(t, err)

	center, err := database.GetRecyclingCenter(ctx, db, id)
	require.NoError(t, err)
	require.NotNil(t, center.WasteID)
	assert.Equal(t, wasteID, *center.WasteID)
	require.NotNil(t, center.WasteCategory)
	assert.Equal(t, "Glass", *center.WasteCategory)

	// Removing the waste record unlinks the center instead of deleting it
	require.NoError(t, database.DeleteWaste(ctx, db, wasteID))
	center, err = database.GetRecyclingCenter(ctx, db, id)
	require.NoError(t, err)
	assert.Nil(t, center.WasteID)
}

func TestRecyclingCenterUpdateAndList(t *testing.T) {
	db := testutil.NewDB(t)

	id, err := database.CreateRecyclingCenter(ctx, db, models.RecyclingCenterRequest{Location: "North", Capacity: 10})
	require.NoError(t, err)
	_, err = database.CreateRecyclingCenter(ctx, db, models.RecyclingCenterRequest{Location: "South", Capacity: 20})
	require.NoError(t, err)

	_, err = database.CreateRecyclingCenter(ctx, db, models.RecyclingCenterRequest{Location: "X", Capacity: 1, WasteID: flexInt(55)})
	assert.ErrorIs(t, err, database.ErrInvalidReference)

	require.NoError(t, database.UpdateRecyclingCenter(ctx, db, id, models.RecyclingCenterRequest{
		Location: "North Yard", Capacity: 15, OperatingHours: "Mon-Fri",
	}))

	centers, err := database.ListRecyclingCenters(ctx, db)
	require.NoError(t, err)
	require.Len(t, centers, 2)
	assert.Equal(t, "South", centers[0].Location)
	assert.Equal(t, "North Yard", centers[1].Location)
	assert.Equal(t, 15.0, centers[1].Capacity)
	assert.Equal(t, "Mon-Fri", centers[1].OperatingHours)
}
