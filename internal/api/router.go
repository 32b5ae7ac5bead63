package api

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/farmtrak/farmtrak-api/docs"
	"github.com/farmtrak/farmtrak-api/internal/api/handler"
	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
	"github.com/farmtrak/farmtrak-api/internal/infrastructure/http/handlers"
)

const defaultAuthRateLimit = 20

// Deps is everything NewRouter wires into routes.
type Deps struct {
	Logger zerolog.Logger
	// Debug exposes internal error text on 5xx responses.
	Debug bool
	// AuthRateLimit is requests per minute per client IP on /api/auth.
	AuthRateLimit int
	// Registry receives HTTP metrics; nil means the default registry.
	Registry *prometheus.Registry

	Guard     *middleware.Guard
	Auth      ports.AuthService
	Farms     ports.FarmService
	Livestock ports.LivestockService
	Crops     ports.CropService
	Sales     ports.SaleService
	Contacts  ports.ContactService
	Stats     ports.StatsService
	Feeds     ports.FeedService
	Produce   ports.ProduceService
	Readiness *handlers.ReadinessHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger, d.Debug)

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "farmtrak",
		Registerer: registerer,
	}))
	e.Use(echomiddleware.BodyLimit("1M"))

	// --- Operational endpoints (no auth required) ---
	readiness := d.Readiness
	if readiness == nil {
		readiness = handlers.NewReadinessHandler()
	}
	e.GET("/health", handlers.Liveness)
	e.GET("/health/ready", readiness.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	g := d.Guard
	authed := g.Authenticate()

	const (
		farmer = domain.RoleFarmer
		vet    = domain.RoleVet
		admin  = domain.RoleAdmin
	)

	// --- Auth ---
	authH := handler.NewAuthHandler(d.Auth)
	limited := echo.WrapMiddleware(authRateLimit(d.AuthRateLimit))
	api.POST("/auth/register", authH.Register, limited)
	api.POST("/auth/login", authH.Login, limited)
	api.GET("/auth/me", authH.Me, authed)
	api.PUT("/auth/me", authH.UpdateMe, authed)
	api.GET("/vets", authH.Providers, g.OptionalAuth())

	// --- Farms ---
	farmH := handler.NewFarmHandler(d.Farms)
	statsH := handler.NewStatsHandler(d.Stats)
	farms := api.Group("/farms", authed)
	ownFarm := g.RequireOwnership(domain.KindFarm, "id", admin)
	farms.GET("", farmH.List)
	farms.POST("", farmH.Create, g.RequireRole(farmer, admin))
	farms.GET("/:id", farmH.Get, ownFarm)
	farms.PUT("/:id", farmH.Update, ownFarm)
	farms.DELETE("/:id", farmH.Delete, ownFarm)
	farms.GET("/:id/stats", statsH.FarmStats, ownFarm)

	// --- Animals and health records ---
	liveH := handler.NewLivestockHandler(d.Livestock)
	animals := api.Group("/animals", authed)
	viewAnimal := g.RequireOwnership(domain.KindAnimal, "id", admin, vet)
	ownAnimal := g.RequireOwnership(domain.KindAnimal, "id", admin)
	animals.GET("", liveH.ListAnimals, g.OptionalParent(domain.KindFarm, middleware.FromQuery("farm_id"), admin))
	animals.POST("", liveH.CreateAnimal,
		g.RequireRole(farmer, admin),
		g.RequireParent(domain.KindFarm, middleware.FromBody("farm_id"), admin))
	animals.GET("/stats/species", statsH.SpeciesStats)
	animals.GET("/:id", liveH.GetAnimal, viewAnimal)
	animals.PUT("/:id", liveH.UpdateAnimal, ownAnimal)
	animals.DELETE("/:id", liveH.DeleteAnimal, ownAnimal)
	animals.GET("/:id/health-records", liveH.ListHealthRecords, viewAnimal)

	records := api.Group("/health-records", authed)
	records.POST("", liveH.CreateHealthRecord,
		g.RequireRole(farmer, vet),
		g.RequireParent(domain.KindAnimal, middleware.FromBody("animal_id"), vet))
	records.GET("/:id", liveH.GetHealthRecord, g.RequireOwnership(domain.KindHealthRecord, "id", admin, vet))
	records.DELETE("/:id", liveH.DeleteHealthRecord, g.RequireOwnership(domain.KindHealthRecord, "id", admin))

	// --- Crops ---
	cropH := handler.NewCropHandler(d.Crops)
	crops := api.Group("/crops", authed)
	ownCrop := g.RequireOwnership(domain.KindCrop, "id", admin)
	crops.GET("", cropH.List, g.OptionalParent(domain.KindFarm, middleware.FromQuery("farm_id"), admin))
	crops.POST("", cropH.Create,
		g.RequireRole(farmer, admin),
		g.RequireParent(domain.KindFarm, middleware.FromBody("farm_id"), admin))
	crops.GET("/:id", cropH.Get, ownCrop)
	crops.PUT("/:id", cropH.Update, ownCrop)
	crops.PATCH("/:id/status", cropH.SetStatus, g.RequireRole(farmer, admin), ownCrop)
	crops.DELETE("/:id", cropH.Delete, ownCrop)

	// --- Sales ---
	saleH := handler.NewSaleHandler(d.Sales)
	sales := api.Group("/sales", authed)
	ownSale := g.RequireOwnership(domain.KindSale, "id", admin)
	sales.GET("", saleH.List, g.RequireRole(farmer, admin))
	sales.POST("", saleH.Create,
		g.RequireRole(farmer),
		g.OptionalParent(domain.KindFarm, middleware.FromBody("farm_id")))
	sales.GET("/:id", saleH.Get, ownSale)
	sales.PATCH("/:id/payment", saleH.RecordPayment, g.RequireRole(farmer), g.RequireOwnership(domain.KindSale, "id"))
	sales.DELETE("/:id", saleH.Delete, ownSale)

	// --- Contacts ---
	contactH := handler.NewContactHandler(d.Contacts)
	contacts := api.Group("/contacts", authed)
	ownContact := g.RequireOwnership(domain.KindContact, "id")
	contacts.GET("", contactH.List)
	contacts.POST("", contactH.Create)
	contacts.GET("/:id", contactH.Get, ownContact)
	contacts.PUT("/:id", contactH.Update, ownContact)
	contacts.DELETE("/:id", contactH.Delete, ownContact)

	// --- Feeds ---
	feedH := handler.NewFeedHandler(d.Feeds)
	feeds := api.Group("/feeds", authed, g.RequireRole(farmer))
	ownFeed := g.RequireOwnership(domain.KindFeed, "id")
	feeds.GET("", feedH.List, g.OptionalParent(domain.KindAnimal, middleware.FromQuery("animal_id")))
	feeds.POST("", feedH.Create, g.RequireParent(domain.KindAnimal, middleware.FromBody("animal_id")))
	feeds.GET("/stats/summary", feedH.Summary)
	feeds.GET("/:id", feedH.Get, ownFeed)
	feeds.PUT("/:id", feedH.Update, ownFeed)
	feeds.DELETE("/:id", feedH.Delete, ownFeed)

	// --- Produce ---
	produceH := handler.NewProduceHandler(d.Produce)
	produce := api.Group("/produce", authed, g.RequireRole(farmer))
	ownProduce := g.RequireOwnership(domain.KindProduce, "id")
	produce.GET("", produceH.List)
	produce.POST("", produceH.Create,
		g.OptionalParent(domain.KindCrop, middleware.FromBody("crop_id")),
		g.OptionalParent(domain.KindAnimal, middleware.FromBody("animal_id")))
	produce.GET("/stats/summary", produceH.Summary)
	produce.GET("/:id", produceH.Get, ownProduce)
	produce.PUT("/:id", produceH.Update, ownProduce)
	produce.DELETE("/:id", produceH.Delete, ownProduce)

	return e
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			switch {
			case v.Status >= http.StatusInternalServerError:
				event = log.Error().Err(v.Error)
			case v.Status >= http.StatusBadRequest:
				event = log.Warn()
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

// authRateLimit limits login and registration attempts per client IP.
func authRateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		perMinute = defaultAuthRateLimit
	}
	return httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(errorBody{Error: errorDetail{
				Code:      "RATE_LIMITED",
				Message:   "too many requests, try again later",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				Path:      r.URL.Path,
				Method:    r.Method,
			}})
		}),
	)
}
