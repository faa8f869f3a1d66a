package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/api"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/cache"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/catalog"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/flights"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/ports"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/random"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/ratelimit"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/repository"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/seatmap"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/service"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/session"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/utils"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/validator"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/pkg/config"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/pkg/health"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/pkg/logger"
)

type App struct {
	config   *config.Config
	log      *logrus.Logger
	server   *http.Server
	sessions ports.SessionStore
	cache    ports.SearchCache
}

func NewApp(cfg *config.Config, log *logrus.Logger) *App {
	return &App{
		config: cfg,
		log:    log,
	}
}

func (a *App) Initialize() error {
	if err := a.setupStores(); err != nil {
		return fmt.Errorf("store setup failed: %w", err)
	}
	a.setupServer()
	return nil
}

func (a *App) setupStores() error {
	switch a.config.Session.Backend {
	case "redis":
		store, err := session.NewRedisStore(session.RedisConfig{
			Addr:     a.config.Session.RedisAddr,
			Password: a.config.Session.RedisPass,
			DB:       a.config.Session.RedisDB,
			TTL:      a.config.Session.TTL,
		})
		if err != nil {
			return fmt.Errorf("redis session store: %w", err)
		}
		a.sessions = store
		a.log.WithField("addr", a.config.Session.RedisAddr).Info("redis session store enabled")
	default:
		a.sessions = session.NewMemoryStore()
	}

	if a.config.Cache.Enabled {
		searchCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     a.config.Cache.RedisAddr,
			Password: a.config.Cache.RedisPass,
			DB:       a.config.Cache.RedisDB,
			TTL:      a.config.Cache.TTL,
		})
		if err != nil {
			return fmt.Errorf("redis search cache: %w", err)
		}
		a.cache = searchCache
		a.log.WithField("ttl", a.config.Cache.TTL.String()).Info("search cache enabled")
	} else {
		a.cache = cache.NewNoOpCache()
	}
	return nil
}

type Services struct {
	Flights  ports.FlightService
	Bookings ports.BookingService
	Catalog  *catalog.Catalog
}

func (a *App) setupServices() Services {
	cat := catalog.New()
	rng := random.New(a.config.RandomSeed)

	flightSvc := service.NewFlightService(
		cat,
		flights.NewGenerator(cat, rng),
		seatmap.NewGenerator(rng),
		a.cache,
		a.sessions,
		a.log,
	)
	bookingSvc := service.NewBookingService(
		repository.NewMemoryBookingStore(),
		a.sessions,
		rng,
		a.log,
	)

	return Services{
		Flights:  flightSvc,
		Bookings: bookingSvc,
		Catalog:  cat,
	}
}

func (a *App) setupServer() {
	services := a.setupServices()
	router := a.setupRouter(services)

	limiter := ratelimit.NewClientLimiter(ratelimit.Config{
		RequestsPerSecond: a.config.RateLimit.RequestsPerSecond,
		BurstSize:         a.config.RateLimit.BurstSize,
	})
	handler := api.RequestLogger(a.log)(api.RateLimit(limiter)(router))

	a.server = &http.Server{
		Addr:         a.config.Server.Address,
		Handler:      handler,
		WriteTimeout: a.config.Server.WriteTimeout,
		ReadTimeout:  a.config.Server.ReadTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}
}

func (a *App) setupRouter(services Services) http.Handler {
	v := validator.NewCustomValidator(services.Catalog)
	router := http.NewServeMux()
	const versionPrefix = "/v1"

	jsonPost := func(next http.HandlerFunc) http.HandlerFunc {
		return utils.AllowedMethods(
			utils.AllowedContentTypes(next, "application/json"),
			"POST",
		)
	}

	router.HandleFunc(versionPrefix+"/health", health.HealthGet("airline-booking-api"))

	router.HandleFunc(versionPrefix+"/destinations", utils.AllowedMethods(api.DestinationsHandler(services.Catalog), "GET"))
	router.HandleFunc(versionPrefix+"/airports", utils.AllowedMethods(api.AirportHandler(services.Catalog), "GET"))
	router.HandleFunc(versionPrefix+"/flights/search", jsonPost(api.SearchHandler(services.Flights, v)))
	router.HandleFunc(versionPrefix+"/flights/status", utils.AllowedMethods(api.FlightStatusHandler(services.Flights), "GET"))
	router.HandleFunc(versionPrefix+"/seatmaps", utils.AllowedMethods(api.SeatMapHandler(services.Flights), "GET"))
	router.HandleFunc(versionPrefix+"/price", jsonPost(api.PriceHandler(v)))
	router.HandleFunc(versionPrefix+"/bookings", utils.AllowedMethods(api.BookingHandler(services.Bookings, v), "POST", "GET"))
	router.HandleFunc(versionPrefix+"/checkin", jsonPost(api.CheckInHandler(services.Bookings, v)))

	return router
}

func (a *App) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.log.WithField("addr", a.server.Addr).Info("starting server")
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
		a.log.Info("starting graceful shutdown")
		return a.Shutdown()
	case <-ctx.Done():
		return a.Shutdown()
	}
}

func (a *App) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := a.cache.Close(); err != nil {
		a.log.WithError(err).Warn("cache close failed")
	}
	if err := a.sessions.Close(); err != nil {
		a.log.WithError(err).Warn("session store close failed")
	}
	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	app := NewApp(cfg, log)
	if err := app.Initialize(); err != nil {
		log.WithError(err).Fatal("failed to initialize application")
	}

	if err := app.Run(context.Background()); err != nil {
		log.WithError(err).Fatal("application error")
	}
}
