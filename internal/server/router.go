package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/config"
	"waste-management-backend/internal/database"
	"waste-management-backend/internal/handlers"
	"waste-management-backend/internal/middleware"
	"waste-management-backend/internal/models"
	"waste-management-backend/internal/websocket"
)

// Deps are the collaborators the HTTP surface needs. Hub and Alerter are optional.
type Deps struct {
	DB      *sqlx.DB
	Config  *config.Config
	Hub     *websocket.Hub
	Alerter handlers.BinAlerter
}

// resource is one CRUD collection
type resource struct {
	path   string
	list   http.HandlerFunc
	get    http.HandlerFunc
	create http.HandlerFunc
	update http.HandlerFunc
	delete http.HandlerFunc
}

// NewRouter builds the full API
func NewRouter(deps Deps) http.Handler {
	db, cfg := deps.DB, deps.Config

	var events handlers.Broadcaster
	if deps.Hub != nil {
		events = deps.Hub
	}
	alerts := handlers.BinAlerts{Alerter: deps.Alerter, Threshold: cfg.BinAlertThreshold}
	crewDefaults := database.CrewDefaults{ScheduleID: cfg.DefaultScheduleID, TeamID: cfg.DefaultTeamID}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// Writes require an admin token when auth is on
	write := r.With()
	if cfg.AuthRequired {
		write = r.With(middleware.Auth(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin))
	}

	r.Get("/", handlers.Index)
	r.Get("/api", handlers.Index)
	r.Get("/health", handlers.Health(db))
	r.Get("/api/health", handlers.Health(db))
	r.Get("/dashboard", handlers.Dashboard(db, alerts.Threshold))
	r.Post("/auth/login", handlers.Login(db, cfg.JWTSecret))
	if deps.Hub != nil {
		r.Get("/ws", websocket.HandleWebSocket(deps.Hub, cfg.JWTSecret, cfg.AuthRequired))
	}

	resources := []resource{
		{
			path:   "/areas",
			list:   handlers.ListAreas(db),
			get:    handlers.GetArea(db),
			create: handlers.CreateArea(db, events),
			update: handlers.UpdateArea(db, events),
			delete: handlers.DeleteArea(db, events),
		},
		{
			path:   "/citizens",
			list:   handlers.ListCitizens(db),
			get:    handlers.GetCitizen(db),
			create: handlers.CreateCitizen(db, events),
			update: handlers.UpdateCitizen(db, events),
			delete: handlers.DeleteCitizen(db, events),
		},
		{
			path:   "/bills",
			list:   handlers.ListBills(db),
			get:    handlers.GetBill(db),
			create: handlers.CreateBill(db, events),
			update: handlers.UpdateBillStatus(db, events),
			delete: handlers.DeleteBill(db, events),
		},
		{
			// Payments are immutable once recorded
			path:   "/payments",
			list:   handlers.ListPayments(db),
			get:    handlers.GetPayment(db),
			create: handlers.CreatePayment(db, events),
		},
		{
			path:   "/waste",
			list:   handlers.ListWaste(db),
			get:    handlers.GetWaste(db),
			create: handlers.CreateWaste(db, events),
			update: handlers.UpdateWaste(db, events),
			delete: handlers.DeleteWaste(db, events),
		},
		{
			path:   "/bins",
			list:   handlers.ListBins(db, alerts),
			get:    handlers.GetBin(db),
			create: handlers.CreateBin(db, events, alerts),
			update: handlers.UpdateBin(db, events, alerts),
			delete: handlers.DeleteBin(db, events),
		},
		{
			path:   "/crew",
			list:   handlers.ListCrew(db),
			get:    handlers.GetCrew(db),
			create: handlers.CreateCrew(db, events, crewDefaults),
			update: handlers.UpdateCrew(db, events),
			delete: handlers.DeleteCrew(db, events),
		},
		{
			path:   "/schedules",
			list:   handlers.ListSchedules(db),
			get:    handlers.GetSchedule(db),
			create: handlers.CreateSchedule(db, events),
			update: handlers.UpdateSchedule(db, events),
			delete: handlers.DeleteSchedule(db, events),
		},
		{
			path:   "/centers",
			list:   handlers.ListRecyclingCenters(db),
			get:    handlers.GetRecyclingCenter(db),
			create: handlers.CreateRecyclingCenter(db, events),
			update: handlers.UpdateRecyclingCenter(db, events),
			delete: handlers.DeleteRecyclingCenter(db, events),
		},
	}
	for _, res := range resources {
		mount(r, write, res)
	}

	// Statistics aliases on an item path report the whole collection
	r.Get("/bills/{id:[0-9]+}/statistics", handlers.BillStatistics(db))
	r.Get("/payments/{id:[0-9]+}/statistics", handlers.PaymentStatistics(db))
	r.Get("/waste/{id:[0-9]+}/statistics", handlers.WasteStatistics(db))
	write.Put("/bills/{id:[0-9]+}/status", handlers.UpdateBillStatus(db, events))

	return r
}

func mount(r, write chi.Router, res resource) {
	item := res.path + "/{id:[0-9]+}"

	r.Get(res.path, res.list)
	r.Get(item, res.get)
	write.Post(res.path, res.create)

	if res.update != nil {
		r.Put(res.path, handlers.MissingID)
		write.Put(item, res.update)
	}
	if res.delete != nil {
		r.Delete(res.path, handlers.MissingID)
		write.Delete(item, res.delete)
	}
}
