package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clubcourt/internal/config"
	"clubcourt/internal/database"
	"clubcourt/internal/middleware"
	"clubcourt/internal/modules/club"
	"clubcourt/internal/pkg/logger"
	"clubcourt/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("db connect", zap.Error(err))
	}

	memberRepo := repository.NewMemberRepository(db)
	sportRepo := repository.NewSportRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	registry, err := club.Load(context.Background(), memberRepo, sportRepo, bookingRepo, bookingRepo)
	if err != nil {
		zl.Fatal("load registry", zap.Error(err))
	}
	zl.Info("registry ready",
		zap.String("club", cfg.ClubName),
		zap.Int("members", len(registry.Members())),
		zap.Int("sports", len(registry.Sports())),
	)

	clubHandler := club.NewHandler(registry)

	if cfg.AppEnv == "production" || cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(zl))

	v1 := r.Group("/api/v1")
	clubHandler.RegisterRoutes(v1)

	zl.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zl.Fatal("server", zap.Error(err))
	}
}
