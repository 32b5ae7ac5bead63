// Command api serves the FarmTrak HTTP API.
//
//	@title						FarmTrak API
//	@version					1.0
//	@description				Farm management API: farms, livestock, feeding, crops, produce, sales, health records and contacts.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/api"
	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
	"github.com/farmtrak/farmtrak-api/internal/core/service"
	mongostore "github.com/farmtrak/farmtrak-api/internal/infrastructure/db/mongo"
	"github.com/farmtrak/farmtrak-api/internal/infrastructure/db/postgres"
	redisstore "github.com/farmtrak/farmtrak-api/internal/infrastructure/db/redis"
	"github.com/farmtrak/farmtrak-api/internal/infrastructure/http/handlers"
	"github.com/farmtrak/farmtrak-api/internal/pkg/config"
	"github.com/farmtrak/farmtrak-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "farmtrak-api: %v\n", err)
		os.Exit(1)
	}
}

// stores is the set of repositories one backend provides.
type stores struct {
	accounts ports.AccountRepository
	farms    ports.FarmRepository
	animals  ports.AnimalRepository
	records  ports.HealthRecordRepository
	crops    ports.CropRepository
	sales    ports.SaleRepository
	contacts ports.ContactRepository
	feeds    ports.FeedRepository
	produce  ports.ProduceRepository
	owners   ports.OwnerLookup
	checks   []handlers.Check
	close    func(context.Context) error
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("close datastore")
		}
	}()

	// A nil interface disables replay when Redis is not configured.
	var idem ports.IdempotencyStore
	checks := st.checks
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  cfg.StoreTimeout,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		idem = redisstore.NewIdempotencyStore(rdb)
		checks = append(checks, handlers.RedisCheck(rdb))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotency store connected")
	} else {
		log.Warn().Msg("REDIS_ADDR unset, idempotent create replay disabled")
	}

	clock := time.Now
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, clock)
	guard := middleware.NewGuard(
		service.NewCredentialVerifier(cfg.JWTSecret, clock),
		service.NewIdentityResolver(st.accounts, cfg.StoreTimeout),
		service.NewAuthorizer(st.owners, cfg.StoreTimeout),
		logger.Component("guard"),
	)

	e := api.NewRouter(api.Deps{
		Logger:        logger.Component("http"),
		Debug:         cfg.Development(),
		AuthRateLimit: cfg.AuthRateLimit,
		Guard:         guard,
		Auth:          service.NewAuthService(st.accounts, issuer, logger.Component("auth")),
		Farms:         service.NewFarmService(st.farms, idem, cfg.IdempotencyTTL, logger.Component("farms")),
		Livestock:     service.NewLivestockService(st.animals, st.records, st.farms, idem, cfg.IdempotencyTTL, logger.Component("livestock")),
		Crops:         service.NewCropService(st.crops, st.farms, clock, logger.Component("crops")),
		Sales:         service.NewSaleService(st.sales, idem, cfg.IdempotencyTTL, logger.Component("sales")),
		Contacts:      service.NewContactService(st.contacts, logger.Component("contacts")),
		Stats:         service.NewStatsService(st.farms, st.animals, st.crops),
		Feeds:         service.NewFeedService(st.feeds, st.animals, st.farms, clock, logger.Component("feeds")),
		Produce:       service.NewProduceService(st.produce, clock, logger.Component("produce")),
		Readiness:     handlers.NewReadinessHandler(checks...),
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pg, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN, Timeout: cfg.StoreTimeout})
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			_ = pg.Close()
			return nil, err
		}
		log.Info().Msg("postgres connected")
		return &stores{
			accounts: postgres.NewAccountRepository(pg),
			farms:    postgres.NewFarmRepository(pg),
			animals:  postgres.NewAnimalRepository(pg),
			records:  postgres.NewHealthRecordRepository(pg),
			crops:    postgres.NewCropRepository(pg),
			sales:    postgres.NewSaleRepository(pg),
			contacts: postgres.NewContactRepository(pg),
			feeds:    postgres.NewFeedRepository(pg),
			produce:  postgres.NewProduceRepository(pg),
			owners:   postgres.NewOwnerLookup(pg),
			checks:   []handlers.Check{handlers.PingCheck("postgres", pg)},
			close:    func(context.Context) error { return pg.Close() },
		}, nil
	default:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, Timeout: 2 * cfg.StoreTimeout})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")
		return &stores{
			accounts: mongostore.NewAccountRepository(db),
			farms:    mongostore.NewFarmRepository(db),
			animals:  mongostore.NewAnimalRepository(db),
			records:  mongostore.NewHealthRecordRepository(db),
			crops:    mongostore.NewCropRepository(db),
			sales:    mongostore.NewSaleRepository(db),
			contacts: mongostore.NewContactRepository(db),
			feeds:    mongostore.NewFeedRepository(db),
			produce:  mongostore.NewProduceRepository(db),
			owners:   mongostore.NewOwnerLookup(db),
			checks:   []handlers.Check{handlers.MongoCheck(db)},
			close:    client.Disconnect,
		}, nil
	}
}
