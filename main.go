package main

import (
	"log"
	"net/http"
	"time"

	"publications-app/config"
	"publications-app/database"
	routes "publications-app/internal/app/http"
	"publications-app/internal/infra/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	if err := database.InitDB(cfg.DBURL); err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Connected and migrated successfully")

	if cfg.SeedOnStart {
		if _, err := database.Seed(database.DB); err != nil {
			logging.Warn("Seeding failed, continuing with existing data", zap.Error(err))
		} else {
			logging.Info("Seeded fixture data")
		}
	}

	r := gin.Default()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.StatsCronSchedule, func() {
		if err := metrics.RefreshPlatformGauges(database.DB); err != nil {
			logging.Error("Stats refresh failed", zap.Error(err))
		}
	})
	cronScheduler.Start()

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}
