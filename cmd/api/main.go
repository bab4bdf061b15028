package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"

	"Association_Portal/internal/config"
	"Association_Portal/internal/pkg"
	"Association_Portal/internal/repository/database"
	"Association_Portal/internal/repository/redis"
	"Association_Portal/internal/router"
	"Association_Portal/internal/service"
	"Association_Portal/internal/upload"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to the config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.App.IsDevelopment() {
		level = slog.LevelDebug
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// create or update tables
	if err := database.Migrate(db); err != nil {
		return err
	}

	tokens := pkg.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	authSvc := service.NewAuthService(database.NewAdminRepository(db), tokens, log)
	seeded, err := authSvc.Seed(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Name)
	if err != nil {
		return err
	}
	if seeded {
		log.Info("seeded admin account", "username", cfg.Admin.Username)
	}

	// redis only backs the shared rate-limit counters
	var counter httprate.LimitCounter
	if cfg.Redis.Addr != "" {
		client, err := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer client.Close()
		counter = redis.NewLimitCounter(client)
	}

	var publisher pkg.Publisher = pkg.LogPublisher{Log: log}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
	}
	defer publisher.Close()

	var mailer pkg.Mailer = pkg.LogMailer{Log: log}
	if cfg.SMTP.Host != "" {
		mailer = pkg.NewSMTPMailer(pkg.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	files, err := upload.NewLocalStore(cfg.App.UploadDir, cfg.App.PublicURL)
	if err != nil {
		return err
	}

	eventRepo := database.NewEventRepository(db)
	handler := router.New(router.Deps{
		Log:         log,
		Env:         cfg.App.Env,
		Development: cfg.App.IsDevelopment(),
		Tokens:      tokens,
		Files:       files,
		UploadDir:   cfg.App.UploadDir,
		Auth:        authSvc,
		Articles:    service.NewArticleService(database.NewArticleRepository(db)),
		Events:      service.NewEventService(eventRepo, publisher, log),
		Gallery:     service.NewGalleryService(database.NewGalleryRepository(db), eventRepo),
		BookClub:    service.NewBookClubService(database.NewBookRepository(db), database.NewDiscussionRepository(db), publisher, log),
		Newsletters: service.NewNewsletterService(database.NewNewsletterRepository(db), files, nil),
		Contact:     service.NewContactService(database.NewContactRepository(db), mailer, publisher, log),
		Academic:    service.NewAcademicService(database.NewAcademicRepository(db)),
	}, router.Limits{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Requests:       cfg.RateLimit.Requests,
		Window:         cfg.RateLimit.Window,
		Counter:        counter,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.App.Env)
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

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
