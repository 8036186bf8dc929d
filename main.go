package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	config "github.com/phillip/pet-adoption-go/config"
	controllers "github.com/phillip/pet-adoption-go/controllers"
	middleware "github.com/phillip/pet-adoption-go/middleware"
	routes "github.com/phillip/pet-adoption-go/routes"
	store "github.com/phillip/pet-adoption-go/store"
	utils "github.com/phillip/pet-adoption-go/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := utils.NewLogger(cfg.LogLevel, cfg.IsProduction())
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.Connect(ctx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		logger.Error("could not connect to mongo", "error", err)
		os.Exit(1)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Warn("index setup failed", "error", err)
	}
	cancel()

	app := &controllers.App{
		Config:    cfg,
		Logger:    logger,
		Tokens:    utils.NewTokenManager(cfg.JWTSecret),
		Users:     db.Users,
		Pets:      db.Pets,
		Adoptions: db.Adoptions,
		Campaigns: db.Campaigns,
		History:   db.History,
		Payments:  utils.NewStripeGateway(cfg.StripeKey),
		Mailer:    utils.NopNotifier{},
	}
	if cfg.CloudinaryEnabled() {
		uploader, err := utils.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Warn("image uploads disabled", "error", err)
		} else {
			app.Images = uploader
		}
	}
	if cfg.MailEnabled() {
		app.Mailer = utils.NewMailgunNotifier(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.EmailFrom)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.SetupRoutes(r, app)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server is running", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop, release := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer release()
	<-stop.Done()

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("mongo disconnect", "error", err)
	}
}
