package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/kmathenge/signup-notification-service/internal/config"
	"github.com/kmathenge/signup-notification-service/internal/db"
	"github.com/kmathenge/signup-notification-service/internal/domains/emails"
	"github.com/kmathenge/signup-notification-service/internal/domains/signups"
	"github.com/kmathenge/signup-notification-service/internal/health"
	"github.com/kmathenge/signup-notification-service/internal/queue"
	"github.com/kmathenge/signup-notification-service/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	dbConn, err := db.Connect(cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbConn.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rabbitMQ.Close()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	signupHandler := signups.NewHandler(dbConn, rabbitMQ)
	r.Route("/signups", func(r chi.Router) {
		signupHandler.RegisterSignupRoutes(r)
	})

	healthHandler := health.NewHandler(dbConn, rabbitMQ)
	r.Get("/health", healthHandler.Health)

	// Start the scheduler that re-publishes emails stuck in pending
	emailsRepo := emails.NewRepository(dbConn)
	scheduler := worker.NewScheduler(emailsRepo, rabbitMQ, 30*time.Second)
	go scheduler.Start()
	defer scheduler.Stop()

	log.Info().Msg("server starting on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
