package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	repo "github.com/yabeye/edu_verify_backend/internal/database"
	"github.com/yabeye/edu_verify_backend/internal/env"
	"github.com/yabeye/edu_verify_backend/internal/otp"
	"github.com/yabeye/edu_verify_backend/internal/store"
	"github.com/yabeye/edu_verify_backend/pkg/auth"
	"github.com/yabeye/edu_verify_backend/pkg/clock"
	"github.com/yabeye/edu_verify_backend/pkg/messenger"
)

// @title           EduVerify API
// @version         1.0
// @description     Email OTP issuance and verification.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// 2. Setup Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 3. Config
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Database Connection
	pool, err := store.NewPostgresPool(cfg.DB.DSN, cfg.DB.MaxConns)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("database connection established")

	// 5. OTP Store
	clk := clock.System()
	otpStore, closeStore, err := newOTPStore(cfg, clk)
	if err != nil {
		logger.Error("failed to set up otp store", "store", cfg.OTP.Store, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	logger.Info("otp store ready", "store", cfg.OTP.Store)

	if sweeper, ok := otpStore.(otp.Sweeper); ok && cfg.OTP.SweepInterval > 0 {
		go otp.RunSweeper(ctx, sweeper, clk, cfg.OTP.SweepInterval, logger.With("component", "otp_sweeper"))
	}

	// 6. Mail and Tokens
	mailer, err := newMailer(cfg.Mail, logger)
	if err != nil {
		logger.Error("failed to set up mail provider", "provider", cfg.Mail.Provider, "error", err)
		os.Exit(1)
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		logger.Error("failed to set up token manager", "error", err)
		os.Exit(1)
	}

	// 7. Initialize Application
	app := &application{
		config:    cfg,
		queries:   repo.New(pool),
		otp:       otp.New(otpStore, clk, cfg.OTP.HashPepper),
		clock:     clk,
		logger:    logger,
		messenger: mailer,
		auth:      jwtManager,
	}

	// 8. Start Server
	logger.Info("starting server", "addr", cfg.Address)
	if err := app.run(ctx, app.mount()); err != nil {
		logger.Error("server crashed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func loadConfig() config {
	var cfg config

	cfg.Address = env.GetString("ADDR", ":8080")
	cfg.DB.DSN = env.GetString("GOOSE_DBSTRING", "")
	cfg.DB.MaxConns = env.GetInt("DB_MAX_CONNS", 10)

	cfg.OTP.Store = env.GetString("OTP_STORE", storeMemory)
	cfg.OTP.RedisRetention = env.GetDuration("OTP_REDIS_RETENTION", time.Hour)
	cfg.OTP.SweepInterval = env.GetDuration("OTP_SWEEP_INTERVAL", 0)
	cfg.OTP.HashPepper = env.GetString("HASH_PEPPER", "default-dev-pepper-do-not-use-in-prod")

	cfg.Redis.Addr = env.GetString("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = env.GetString("REDIS_PASSWORD", "")
	cfg.Redis.DB = env.GetInt("REDIS_DB", 0)

	cfg.JWT.Secret = env.GetString("JWT_SECRET", "")
	cfg.JWT.TTL = env.GetDuration("VERIFICATION_TOKEN_TTL", 30*time.Minute)

	cfg.Mail.Provider = env.GetString("MAIL_PROVIDER", mailLog)
	cfg.Mail.From = env.GetString("MAIL_FROM", "")
	cfg.Mail.FromName = env.GetString("MAIL_FROM_NAME", "EduVerify")
	cfg.Mail.SMTPHost = env.GetString("SMTP_HOST", "")
	cfg.Mail.SMTPPort = env.GetInt("SMTP_PORT", 587)
	cfg.Mail.SMTPUsername = env.GetString("SMTP_USERNAME", "")
	cfg.Mail.SMTPPassword = env.GetString("SMTP_PASSWORD", "")
	cfg.Mail.SendGridAPIKey = env.GetString("SENDGRID_API_KEY", "")

	cfg.CORSAllowedOrigins = env.GetList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	return cfg
}

const (
	storeMemory = "memory"
	storeRedis  = "redis"

	mailLog      = "log"
	mailSMTP     = "smtp"
	mailSendGrid = "sendgrid"
)

// newOTPStore returns the configured store and a function releasing its
// connections.
func newOTPStore(cfg config, clk clock.Clocker) (otp.Store, func(), error) {
	switch cfg.OTP.Store {
	case storeMemory:
		return otp.NewMemoryStore(), func() {}, nil
	case storeRedis:
		client, err := store.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return otp.NewRedisStore(client, clk, cfg.OTP.RedisRetention), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown otp store %q", cfg.OTP.Store)
	}
}

func newMailer(cfg mailConfig, logger *slog.Logger) (messenger.Provider, error) {
	switch cfg.Provider {
	case mailLog:
		return messenger.NewLogProvider(logger.With("component", "mail")), nil
	case mailSMTP:
		return messenger.NewSMTPProvider(messenger.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.From,
		})
	case mailSendGrid:
		return messenger.NewSendGridProvider(messenger.SendGridConfig{
			APIKey:   cfg.SendGridAPIKey,
			From:     cfg.From,
			FromName: cfg.FromName,
		})
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}
