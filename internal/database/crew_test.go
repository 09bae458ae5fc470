package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/internal/testutil"
)

var defaults = database.CrewDefaults{ScheduleID: 7, TeamID: 3}

func TestCreateCrewFallsBackToConfiguredDefaults(t *testing.T) {
	db := testutil.NewDB(t)
	areaID := mustArea(t, db, "Area")

	id, err := database.CreateCrew(ctx, db, models.CreateCrewRequest{CrewName: "Alpha", AreaID: models.FlexInt(areaID)}, defaults)
	require.NoError(t, err)

	crew, err := database.GetCrew(ctx, db, id)
	require.NoError(t, err)
	assert.EqualValues(t, 7, crew.ScheduleID)
	assert.EqualValues(t, 3, crew.TeamID)
	assert.Nil(t, crew.ScheduleDate)
}

func TestCreateCrewResolvesFromArea(t *testing.T) {
	db := testutil.NewDB(t)
	areaID := mustArea(t, db, "Area")
	s1, err := database.CreateSchedule(ctx, db, models.ScheduleRequest{ScheduleDate: "2030-01-02", AreaID: models.FlexInt(areaID)})
	require.NoError(t, err)
	_, err = database.CreateSchedule(ctx, db, models.ScheduleRequest{ScheduleDate: "2030-01-01", AreaID: models.FlexInt(areaID)})
	require.NoError(t, err)

	_, err = database.CreateCrew(ctx, db, models.CreateCrewRequest{
		CrewName: "Lead", AreaID: models.FlexInt(areaID), TeamID: flexInt(12),
	}, defaults)
	require.NoError(t, err)

	id, err := database.CreateCrew(ctx, db, models.CreateCrewRequest{CrewName: "Second", AreaID: models.FlexInt(areaID)}, defaults)
	require.NoError(t, err)

	crew, err := database.GetCrew(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, s1, crew.ScheduleID)
	assert.EqualValues(t, 12, crew.TeamID)
	require.NotNil(t, crew.ScheduleDate)
	assert.Equal(t, "2030-01-02", *crew.ScheduleDate)
	require.NotNil(t, crew.AreaName)
	assert.Equal(t, "Area", *crew.AreaName)
}

func TestUpdateCrewKeepsOmittedIDs(t *testing.T) {
	db := testutil.NewDB(t)
	areaID := mustArea(t, db, "Area")
	id, err := database.CreateCrew(ctx, db, models.CreateCrewRequest{
		CrewName: "Bravo", Contact: "111", AreaID: models.FlexInt(areaID), ScheduleID: flexInt(4), TeamID: flexInt(5),
	}, defaults)
	require.NoError(t, err)

	require.NoError(t, database.UpdateCrew(ctx, db, id, models.UpdateCrewRequest{CrewName: "Bravo 2", TeamID: flexInt(6)}))

	crew, err := database.GetCrew(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, "Bravo 2", crew.CrewName)
	assert.Equal(t, "", crew.Contact)
	assert.Equal(t, areaID, crew.AreaID)
	assert.EqualValues(t, 4, crew.ScheduleID)
	assert.EqualValues(t, 6, crew.TeamID)

	assert.ErrorIs(t, database.UpdateCrew(ctx, db, id, models.UpdateCrewRequest{CrewName: "X", AreaID: flexInt(999)}),
		database.ErrInvalidReference)
	assert.ErrorIs(t, database.UpdateCrew(ctx, db, id+10, models.UpdateCrewRequest{CrewName: "X"}), database.ErrNotFound)
}

func TestListCrewByArea(t *testing.T) {
	db := testutil.NewDB(t)
	a1 := mustArea(t, db, "A1")
	a2 := mustArea(t, db, "A2")
	for _, area := range []int64{a1, a2, a1} {
		_, err := database.CreateCrew(ctx, db, models.CreateCrewRequest{CrewName: "C", AreaID: models.FlexInt(area)}, defaults)
		require.NoError(t, err)
	}

	crew, err := database.ListCrew(ctx, db, &a1)
	require.NoError(t, err)
	require.Len(t, crew, 2)
	assert.Greater(t, crew[0].CrewID, crew[1].CrewID)

	require.NoError(t, database.DeleteCrew(ctx, db, crew[0].CrewID))
	crew, err = database.ListCrew(ctx, db, nil)
	require.NoError(t, err)
	assert.Len(t, crew, 2)
}
