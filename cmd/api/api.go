package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/yabeye/edu_verify_backend/docs"
	repo "github.com/yabeye/edu_verify_backend/internal/database"
	"github.com/yabeye/edu_verify_backend/internal/middlewares"
	"github.com/yabeye/edu_verify_backend/internal/otp"
	"github.com/yabeye/edu_verify_backend/internal/verification"
	"github.com/yabeye/edu_verify_backend/pkg/auth"
	"github.com/yabeye/edu_verify_backend/pkg/clock"
	"github.com/yabeye/edu_verify_backend/pkg/constants"
	"github.com/yabeye/edu_verify_backend/pkg/json"
	"github.com/yabeye/edu_verify_backend/pkg/messenger"
)

type config struct {
	Address string
	DB      struct {
		DSN      string
		MaxConns int
	}
	OTP struct {
		Store          string
		RedisRetention time.Duration
		SweepInterval  time.Duration
		HashPepper     string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	JWT struct {
		Secret string
		TTL    time.Duration
	}
	Mail               mailConfig
	CORSAllowedOrigins []string
}

type mailConfig struct {
	Provider       string
	From           string
	FromName       string
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SendGridAPIKey string
}

type application struct {
	config    config
	queries   repo.Querier
	otp       otp.Service
	clock     clock.Clocker
	logger    *slog.Logger
	messenger messenger.Provider
	auth      auth.TokenManager
}

// run serves handler until ctx is cancelled, then drains open requests.
func (app *application) run(ctx context.Context, handler http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.Address,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type healthResponse struct {
	Status          string `json:"status" example:"available"`
	Message         string `json:"message" example:"API is live"`
	ServerTimeStamp string `json:"serverTimeStamp" example:"2026-01-01T10:00:00Z"`
}

// healthCheckHandler godoc
// @Summary      Health Check
// @Description  Checks if the API is up and running
// @Tags         system
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	json.Write(w, http.StatusOK, healthResponse{
		Status:          "available",
		Message:         "API is live 🚀",
		ServerTimeStamp: app.clock.Now().UTC().Format(time.RFC3339),
	})
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 1MB bodies and 100 req/min per client globally.
	r.Use(middlewares.LimitRequestSize(1 * 1024 * 1024))
	r.Use(middlewares.RateLimit(100, 1*time.Minute, constants.ErrRateLimited))

	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/swagger/*", httpSwagger.Handler())
	r.Get("/health", app.healthCheckHandler)

	verificationHandler := verification.NewHandler(
		app.otp,
		verification.New(app.queries),
		app.logger.With("handler", "verification"),
		app.messenger,
		app.auth,
		app.clock,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/", MountRoutes(app, verificationHandler))
	})

	return r
}
