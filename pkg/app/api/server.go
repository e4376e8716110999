// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/hastrology/hastrology/pkg/app/http"
	"github.com/hastrology/hastrology/pkg/auth"
	"github.com/hastrology/hastrology/pkg/config"
	"github.com/hastrology/hastrology/pkg/generator"
	"github.com/hastrology/hastrology/pkg/horoscope"
	horoscopeservice "github.com/hastrology/hastrology/pkg/horoscope/service"
	"github.com/hastrology/hastrology/pkg/horoscopestore"
	"github.com/hastrology/hastrology/pkg/pgutil"
	userservice "github.com/hastrology/hastrology/pkg/user/service"
	"github.com/hastrology/hastrology/pkg/userstore"
)

const (
	defaultRequestTimeout = 60 * time.Second
	healthCheckTimeout    = 5 * time.Second
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

type pinger interface {
	PingContext(ctx context.Context) error
}

type healthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// dependencies are the collaborators the router is built from.
type dependencies struct {
	users      userservice.Service
	horoscopes horoscopeservice.Service
	tokens     auth.Verifier
	db         pinger
	generator  healthChecker
	logger     *zap.Logger
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("environment", cfg.Environment),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	logger.Info("Connected to database")

	gen, err := generator.New(generator.Config{
		URL:           cfg.AIServer.URL,
		Timeout:       cfg.AIServer.Timeout,
		HealthTimeout: cfg.AIServer.HealthTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("create generator client: %w", err)
	}
	if !gen.HealthCheck(ctx) {
		// Generation outages are reported per request, so startup continues.
		logger.Warn("AI server is not reachable", zap.String("url", cfg.AIServer.URL))
	}

	quote, err := horoscope.NewPaymentQuote(cfg.Payment.PriceSOL, cfg.Payment.Recipient)
	if err != nil {
		return fmt.Errorf("payment quote: %w", err)
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, auth.WithTTL(cfg.Auth.TokenTTL))
	userStore := userstore.NewStore(db)
	horoscopeStore := horoscopestore.NewStore(db)

	userSvc := userservice.NewService(userStore, tokens, logger)
	horoscopeSvc := horoscopeservice.NewService(horoscopeStore, userStore, gen, nil, quote, logger)

	router, limiter := s.setupRouter(dependencies{
		users:      userservice.NewLog(userSvc, logger),
		horoscopes: horoscopeservice.NewLog(horoscopeSvc, logger),
		tokens:     tokens,
		db:         db,
		generator:  gen,
		logger:     logger,
	})

	done := make(chan struct{})
	go limiter.RunCleanup(done)
	defer close(done)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) setupRouter(deps dependencies) (chi.Router, *apphttp.RateLimiter) {
	logger := deps.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rs := apphttp.NewResponder(logger, !s.cfg.IsProduction())
	limiter := apphttp.NewRateLimiter(s.cfg.RateLimit.Window(), s.cfg.RateLimit.MaxRequests, rs)

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apphttp.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(apphttp.Metrics)
	r.Use(middleware.Timeout(defaultRequestTimeout))
	r.Use(s.corsHandler())

	r.NotFound(rs.NotFound)

	// Liveness
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Get("/health", healthHandler(deps.db, deps.generator))

		r.Route("/user", func(r chi.Router) {
			userservice.RegisterRoutes(r, deps.users, rs, auth.Required(deps.tokens, rs))
		})
		r.Route("/horoscope", func(r chi.Router) {
			horoscopeservice.RegisterRoutes(r, deps.horoscopes, rs, auth.Optional(deps.tokens, rs))
		})
	})

	return r, limiter
}

func (s *Server) corsHandler() func(http.Handler) http.Handler {
	origins := s.cfg.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: !slices.Contains(origins, "*"),
		MaxAge:           300,
	})
}

type healthResponse struct {
	apphttp.Envelope
	Status   string `json:"status"`
	Database string `json:"database"`
	AIServer string `json:"ai_server"`
}

// healthHandler reports readiness of the database and the generation server.
// Any unreachable dependency turns the answer into 503.
func healthHandler(db pinger, gen healthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		resp := healthResponse{
			Envelope: apphttp.OK(),
			Status:   "healthy",
			Database: "connected",
			AIServer: "connected",
		}
		if db == nil || db.PingContext(ctx) != nil {
			resp.Database = "disconnected"
		}
		if gen == nil || !gen.HealthCheck(ctx) {
			resp.AIServer = "disconnected"
		}

		status := http.StatusOK
		if resp.Database != "connected" || resp.AIServer != "connected" {
			resp.Success = false
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		apphttp.WriteJSON(w, status, resp)
	}
}
