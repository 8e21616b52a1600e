// Package runtime wires configuration, storage, services and the HTTP server
// into a runnable application.
package runtime

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/campusmap/campus-api/internal/app"
	"github.com/campusmap/campus-api/internal/app/httpapi"
	"github.com/campusmap/campus-api/internal/app/storage/postgres"
	"github.com/campusmap/campus-api/internal/auth"
	"github.com/campusmap/campus-api/internal/config"
	"github.com/campusmap/campus-api/internal/database"
	"github.com/campusmap/campus-api/internal/httputil"
	"github.com/campusmap/campus-api/internal/logging"
	"github.com/campusmap/campus-api/internal/metrics"
	"github.com/campusmap/campus-api/internal/middleware"
)

const serviceName = "campus-api"

// publicPaths pass the auth middleware without a token.
var publicPaths = []string{
	"/api/auth/register",
	"/api/auth/login",
	"/healthz",
	"/metrics",
}

// Application wires core dependencies and manages the HTTP server lifecycle.
type Application struct {
	cfg         *config.Config
	log         *logging.Logger
	httpServer  *http.Server
	db          *sql.DB
	limiterDone chan struct{}
}

// NewApplication constructs an application instance with default wiring.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logging.New(serviceName, cfg.Logging.Level, cfg.Logging.Format)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.Database.MigrateOnStart {
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	store := postgres.New(db)
	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	application := app.New(app.Stores{
		Users:     store,
		Questions: store,
		Answers:   store,
		Directory: store,
	}, app.Options{
		Tokens:               tokens,
		TeacherEmailSuffixes: cfg.TeacherEmailSuffixes,
	}, log)

	m := metrics.New()

	router := httpapi.NewRouter(application, middleware.RequireAdmin)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.MetricsMiddleware(serviceName, m))

	authMW := middleware.NewAuthMiddleware(tokens, log, publicPaths)
	corsMW := middleware.NewCORSMiddleware(cfg.AllowedOrigins)

	// Rate limiting runs inside auth so authenticated callers are keyed by
	// user id rather than by address.
	var handler http.Handler = router
	limiterDone := make(chan struct{})
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		limiter.StartCleanup(time.Minute, limiterDone)
		handler = limiter.Handler(handler)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      corsMW.Handler(authMW.Handler(handler)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Application{cfg: cfg, log: log, httpServer: srv, db: db, limiterDone: limiterDone}, nil
}

// Run starts the HTTP server and blocks until the context is cancelled or the
// server fails.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.log.Infof("HTTP server listening on %s", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server and closes the database.
func (a *Application) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if a.limiterDone != nil {
		close(a.limiterDone)
		a.limiterDone = nil
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.WithError(err).Warn("error closing database connection")
		}
	}
	return nil
}
