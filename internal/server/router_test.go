package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-management-backend/internal/config"
	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/internal/server"
	"waste-management-backend/internal/testutil"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	ID      int64           `json:"id"`
	Data    json.RawMessage `json:"data"`
}

type api struct {
	t     *testing.T
	h     http.Handler
	token string
}

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigins:    []string{"*"},
		DefaultScheduleID: 1,
		DefaultTeamID:     1,
		BinAlertThreshold: 80,
	}
}

func newAPI(t *testing.T) *api {
	db := testutil.NewDB(t)
	return &api{t: t, h: server.NewRouter(server.Deps{DB: db, Config: testConfig()})}
}

func (a *api) do(method, path, body string) (int, envelope) {
	a.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func (a *api) create(path, body string) int64 {
	a.t.Helper()
	code, env := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, code, env.Error)
	require.True(a.t, env.Success)
	require.NotZero(a.t, env.ID)
	return env.ID
}

func decode(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func TestIndexAndHealth(t *testing.T) {
	a := newAPI(t)

	for _, path := range []string{"/", "/api"} {
		code, env := a.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Waste Management API", env.Message)
	}
	code, env := a.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestAreaRoundTrip(t *testing.T) {
	a := newAPI(t)

	id := a.create("/areas", `{"area_name":"North","description":"Hills"}`)

	code, env := a.do(http.MethodGet, fmt.Sprintf("/areas/%d", id), "")
	require.Equal(t, http.StatusOK, code)
	var area models.Area
	decode(t, env, &area)
	assert.Equal(t, id, area.AreaID)
	assert.Equal(t, "North", area.AreaName)
	assert.Equal(t, "Hills", area.Description)
}

func TestCreateWithMissingFieldInsertsNothing(t *testing.T) {
	a := newAPI(t)

	code, env := a.do(http.MethodPost, "/areas", `{"description":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, "area_name is required", env.Error)

	code, env = a.do(http.MethodPost, "/citizens", `{"name":"Ana","address":"1 Elm St"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "area_id is required", env.Error)

	_, env = a.do(http.MethodGet, "/areas", "")
	var areas []models.Area
	decode(t, env, &areas)
	assert.Empty(t, areas)
}

func TestDeleteNonexistentSucceeds(t *testing.T) {
	a := newAPI(t)

	for _, path := range []string{"/areas/999", "/citizens/999", "/bills/999", "/bins/999", "/centers/999"} {
		code, env := a.do(http.MethodDelete, path, "")
		assert.Equal(t, http.StatusOK, code, path)
		assert.True(t, env.Success, path)
	}
}

func TestDeleteGuardsKeepRows(t *testing.T) {
	a := newAPI(t)

	areaID := a.create("/areas", `{"area_name":"North"}`)
	citizenID := a.create("/citizens", fmt.Sprintf(`{"name":"Ana","address":"1 Elm St","area_id":%d}`, areaID))
	a.create("/bills", fmt.Sprintf(`{"status":"Pending","amount":"25.50","due_date":"2026-05-01","citizen_id":%d}`, citizenID))

	code, env := a.do(http.MethodDelete, fmt.Sprintf("/areas/%d", areaID), "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Cannot delete area with citizens. Delete citizens first.", env.Error)

	code, env = a.do(http.MethodDelete, fmt.Sprintf("/citizens/%d", citizenID), "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Cannot delete citizen with bills. Delete bills first.", env.Error)

	code, _ = a.do(http.MethodGet, fmt.Sprintf("/areas/%d", areaID), "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = a.do(http.MethodGet, fmt.Sprintf("/citizens/%d", citizenID), "")
	assert.Equal(t, http.StatusOK, code)
}

func TestPaymentMarksBillPaid(t *testing.T) {
	a := newAPI(t)

	areaID := a.create("/areas", `{"area_name":"North"}`)
	citizenID := a.create("/citizens", fmt.Sprintf(`{"name":"Ana","address":"1 Elm St","area_id":%d}`, areaID))
	billID := a.create("/bills", fmt.Sprintf(`{"status":"Pending","amount":40,"due_date":"2026-05-01","citizen_id":%d}`, citizenID))

	code, env := a.do(http.MethodPost, "/payments", fmt.Sprintf(`{"amount":40,"payment_method":"Cash","bill_id":%d}`, billID))
	require.Equal(t, http.StatusCreated, code, env.Error)
	assert.Equal(t, "Payment recorded successfully", env.Message)

	_, env = a.do(http.MethodGet, fmt.Sprintf("/bills/%d", billID), "")
	var bill models.Bill
	decode(t, env, &bill)
	assert.Equal(t, models.BillStatusPaid, bill.Status)

	code, env = a.do(http.MethodPost, "/payments", `{"amount":40,"payment_method":"Cash","bill_id":999}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Bill does not exist", env.Error)
}

func TestBillStatistics(t *testing.T) {
	a := newAPI(t)

	areaID := a.create("/areas", `{"area_name":"North"}`)
	citizenID := a.create("/citizens", fmt.Sprintf(`{"name":"Ana","address":"1 Elm St","area_id":%d}`, areaID))
	for _, status := range []string{"Paid", "Paid", "Pending"} {
		a.create("/bills", fmt.Sprintf(`{"status":%q,"amount":10,"due_date":"2026-05-01","citizen_id":%d}`, status, citizenID))
	}

	for _, path := range []string{"/bills?statistics=true", "/bills/1/statistics"} {
		code, env := a.do(http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, code, path)
		var stats models.BillStatistics
		decode(t, env, &stats)
		assert.Equal(t, int64(3), stats.TotalBills, path)
		assert.Equal(t, int64(2), stats.PaidCount, path)
		assert.Equal(t, int64(1), stats.PendingCount, path)
		assert.InDelta(t, 30.0, stats.TotalAmount, 0.001, path)
	}

	// A citizen filter takes precedence over statistics
	_, env := a.do(http.MethodGet, fmt.Sprintf("/bills?citizen_id=%d&statistics=true", citizenID), "")
	var bills []models.Bill
	decode(t, env, &bills)
	assert.Len(t, bills, 3)
}

func TestCitizensByAreaNewestFirst(t *testing.T) {
	a := newAPI(t)

	north := a.create("/areas", `{"area_name":"North"}`)
	south := a.create("/areas", `{"area_name":"South"}`)
	first := a.create("/citizens", fmt.Sprintf(`{"name":"Ana","address":"1 Elm St","area_id":%d}`, south))
	a.create("/citizens", fmt.Sprintf(`{"name":"Ben","address":"2 Oak St","area_id":%d}`, north))
	second := a.create("/citizens", fmt.Sprintf(`{"name":"Cy","address":"3 Ash St","area_id":"%d"}`, south))

	code, env := a.do(http.MethodGet, fmt.Sprintf("/citizens?area_id=%d", south), "")
	require.Equal(t, http.StatusOK, code)
	var citizens []models.Citizen
	decode(t, env, &citizens)
	require.Len(t, citizens, 2)
	assert.Equal(t, second, citizens[0].CitizenID)
	assert.Equal(t, first, citizens[1].CitizenID)
	require.NotNil(t, citizens[0].AreaName)
	assert.Equal(t, "South", *citizens[0].AreaName)
}

func TestRouterErrors(t *testing.T) {
	a := newAPI(t)

	tests := []struct {
		method, path, body string
		code               int
		err                string
	}{
		{http.MethodGet, "/nope", "", http.StatusNotFound, "Endpoint not found"},
		{http.MethodPatch, "/areas", "", http.StatusMethodNotAllowed, "Method not allowed"},
		{http.MethodPut, "/payments/1", `{}`, http.StatusMethodNotAllowed, "Method not allowed"},
		{http.MethodPut, "/areas", `{"area_name":"x"}`, http.StatusBadRequest, "ID is required"},
		{http.MethodDelete, "/bins", "", http.StatusBadRequest, "ID is required"},
		{http.MethodGet, "/areas/999", "", http.StatusNotFound, "Area not found"},
		{http.MethodPut, "/areas/999", `{"area_name":"x"}`, http.StatusNotFound, "Area not found"},
		{http.MethodPost, "/areas", `{"area_name":`, http.StatusBadRequest, "Invalid request body"},
		{http.MethodGet, "/citizens?area_id=abc", "", http.StatusBadRequest, "area_id must be a number"},
		{http.MethodPost, "/citizens", `{"name":"Ana","address":"1 Elm St","area_id":42}`, http.StatusBadRequest, "Area does not exist"},
		{http.MethodPost, "/bills", `{"status":"Late","amount":1,"due_date":"2026-01-01","citizen_id":1}`, http.StatusBadRequest, "status must be one of: Pending, Paid, Overdue"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			sub := &api{t: t, h: a.h}
			code, env := sub.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.code, code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.err, env.Error)
		})
	}
}

func TestBillStatusUpdate(t *testing.T) {
	a := newAPI(t)

	areaID := a.create("/areas", `{"area_name":"North"}`)
	citizenID := a.create("/citizens", fmt.Sprintf(`{"name":"Ana","address":"1 Elm St","area_id":%d}`, areaID))
	billID := a.create("/bills", fmt.Sprintf(`{"status":"Pending","amount":10,"due_date":"2026-05-01","citizen_id":%d}`, citizenID))

	for path, status := range map[string]string{
		fmt.Sprintf("/bills/%d", billID):        "Overdue",
		fmt.Sprintf("/bills/%d/status", billID): "Paid",
	} {
		code, env := a.do(http.MethodPut, path, fmt.Sprintf(`{"status":%q}`, status))
		require.Equal(t, http.StatusOK, code, env.Error)
		assert.Equal(t, "Bill status updated successfully", env.Message)

		_, env = a.do(http.MethodGet, fmt.Sprintf("/bills/%d", billID), "")
		var bill models.Bill
		decode(t, env, &bill)
		assert.Equal(t, status, bill.Status)
	}
}

func TestWasteCategoryAndTypeAlias(t *testing.T) {
	a := newAPI(t)

	areaID := a.create("/areas", `{"area_name":"North"}`)
	citizenID := a.create("/citizens", fmt.Sprintf(`{"name":"Ana","address":"1 Elm St","area_id":%d}`, areaID))
	a.create("/waste", fmt.Sprintf(`{"waste_type":"Plastic","quantity":"3","citizen_id":%d,"area_id":%d}`, citizenID, areaID))
	a.create("/waste", fmt.Sprintf(`{"category":"Paper","quantity":2,"citizen_id":%d,"area_id":%d,"collection_date":"2026-04-02"}`, citizenID, areaID))

	_, env := a.do(http.MethodGet, "/waste?category=Plastic", "")
	var records []models.WasteResponse
	decode(t, env, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "Plastic", records[0].Category)
	assert.Equal(t, "Plastic", records[0].WasteType)
	assert.Equal(t, models.WasteStatusPending, records[0].Status)

	_, env = a.do(http.MethodGet, "/waste?statistics", "")
	var stats []models.WasteCategoryStatistics
	decode(t, env, &stats)
	assert.Len(t, stats, 2)
}

type recordingAlerter struct {
	mu   sync.Mutex
	bins []models.Bin
}

func (r *recordingAlerter) SendBinFullAlert(_ context.Context, bin models.Bin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bins = append(r.bins, bin)
	return nil
}

func TestBinUpdateModesAndAlerts(t *testing.T) {
	db := testutil.NewDB(t)
	alerter := &recordingAlerter{}
	a := &api{t: t, h: server.NewRouter(server.Deps{DB: db, Config: testConfig(), Alerter: alerter})}

	areaID := a.create("/areas", `{"area_name":"North"}`)
	binID := a.create("/bins", fmt.Sprintf(`{"area_id":%d,"fill_level":20,"sensor":"S-1"}`, areaID))
	assert.Empty(t, alerter.bins)

	code, env := a.do(http.MethodPut, fmt.Sprintf("/bins/%d", binID), `{"fill_level":"90"}`)
	require.Equal(t, http.StatusOK, code, env.Error)
	assert.Equal(t, "Bin fill level updated successfully", env.Message)
	require.Len(t, alerter.bins, 1)
	assert.Equal(t, binID, alerter.bins[0].BinID)

	code, env = a.do(http.MethodPut, fmt.Sprintf("/bins/%d", binID), fmt.Sprintf(`{"status":"Maintenance","area_id":%d}`, areaID))
	require.Equal(t, http.StatusOK, code, env.Error)
	assert.Equal(t, "Bin updated successfully", env.Message)

	_, env = a.do(http.MethodGet, fmt.Sprintf("/bins/%d", binID), "")
	var bin models.BinResponse
	decode(t, env, &bin)
	assert.Equal(t, "Maintenance", bin.Status)
	assert.InDelta(t, 90.0, bin.FillLevel, 0.001)
	assert.Equal(t, "Critical", bin.FillStatus)
	assert.Len(t, alerter.bins, 1)

	code, env = a.do(http.MethodPut, fmt.Sprintf("/bins/%d", binID), `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "fill_level is required", env.Error)

	_, env = a.do(http.MethodGet, "/bins?statistics=true", "")
	var stats models.BinStatistics
	decode(t, env, &stats)
	assert.Equal(t, int64(1), stats.TotalBins)
	assert.Equal(t, int64(1), stats.CriticalBins)
}

func TestCrewDefaultsAndDashboard(t *testing.T) {
	a := newAPI(t)

	areaID := a.create("/areas", `{"area_name":"North"}`)
	scheduleID := a.create("/schedules", fmt.Sprintf(`{"schedule_date":"2026-06-01","area_id":%d}`, areaID))
	crewID := a.create("/crew", fmt.Sprintf(`{"crew_name":"Team A","area_id":%d}`, areaID))

	_, env := a.do(http.MethodGet, fmt.Sprintf("/crew/%d", crewID), "")
	var crew models.Crew
	decode(t, env, &crew)
	assert.Equal(t, scheduleID, crew.ScheduleID)

	a.create("/centers", `{"location":"Depot Road","capacity":500}`)

	code, env := a.do(http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, code)
	var summary models.DashboardSummary
	decode(t, env, &summary)
	assert.Equal(t, int64(1), summary.Counts["areas"])
	assert.Equal(t, int64(1), summary.Counts["crew"])
	assert.Equal(t, int64(1), summary.Counts["schedules"])
	assert.Equal(t, int64(1), summary.Counts["recycling_centers"])
}

func TestAuthGuardsWrites(t *testing.T) {
	db := testutil.NewDB(t)
	cfg := testConfig()
	cfg.AuthRequired = true
	cfg.JWTSecret = "router-secret"
	require.NoError(t, database.SeedAdmin(context.Background(), db, "admin@example.com", "s3cret-pass"))
	a := &api{t: t, h: server.NewRouter(server.Deps{DB: db, Config: cfg})}

	code, env := a.do(http.MethodPost, "/areas", `{"area_name":"North"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)

	code, _ = a.do(http.MethodGet, "/areas", "")
	assert.Equal(t, http.StatusOK, code)

	code, env = a.do(http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password", env.Error)

	code, env = a.do(http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, code, env.Error)
	var login models.LoginResponse
	decode(t, env, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, models.RoleAdmin, login.User.Role)

	a.token = login.Token
	a.create("/areas", `{"area_name":"North"}`)
}
