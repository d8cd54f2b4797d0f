// Command server boots the donation backend: configuration, logging,
// database, tracing, payment collaborators, HTTP router, and a graceful
// shutdown loop.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-donation-backend/internal/config"
	httpapi "github.com/tbourn/go-donation-backend/internal/http"
	"github.com/tbourn/go-donation-backend/internal/observability"
	"github.com/tbourn/go-donation-backend/internal/payments"
	"github.com/tbourn/go-donation-backend/internal/repo"
	"github.com/tbourn/go-donation-backend/internal/services"
	"github.com/tbourn/go-donation-backend/internal/sysutil"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	logLevel := sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("setup tracing")
	}

	authSvc := &services.AuthService{DB: db, SessionTTL: cfg.SessionTTL}
	for _, seed := range []config.SeedUser{cfg.SeedAdmin, cfg.SeedOwner} {
		if seed.Password == "" {
			log.Warn().Str("username", seed.Username).Str("role", seed.Role).
				Msg("seed password unset; account not created")
			continue
		}
		var email *string
		if seed.Email != "" {
			e := seed.Email
			email = &e
		}
		if err := authSvc.EnsureUser(ctx, seed.Username, seed.Password, email, seed.Role); err != nil {
			log.Fatal().Err(err).Str("username", seed.Username).Msg("seed user")
		}
	}

	gws := httpapi.Gateways{
		Charger:  payments.SandboxCharger{},
		Redirect: payments.NewSandboxRedirect(),
	}
	if cfg.Stripe.SecretKey != "" {
		gws.Charger = payments.NewStripeCharger(cfg.Stripe.SecretKey)
		log.Info().Msg("card charges via live processor")
	} else {
		log.Warn().Msg("no card processor key; sandbox charger active")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, gws, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("base_path", cfg.APIBasePath).
			Stringer("log_level", logLevel).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("serve")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
}
