package main

import (
	"time"

	"abstract-portal/config"
	"abstract-portal/database"
	routes "abstract-portal/internal/app/http"
	"abstract-portal/internal/app/http/middleware"
	"abstract-portal/internal/cache"
	"abstract-portal/internal/jobs"
	"abstract-portal/internal/notify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	mail := notify.NewSender(logger)
	rdb := cache.NewClient(config.REDIS_ADDR, logger)

	if c := jobs.StartStatsCron(config.STATS_CRON, logger); c != nil {
		defer c.Stop()
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestLogger(logger))

	// Uploaded PDFs are served straight from disk
	r.Static("/uploads", config.UPLOAD_DIR)

	routes.RegisterRoutes(r, mail, rdb, logger)

	logger.Info("server starting", zap.String("port", config.PORT))
	r.Run(":" + config.PORT)
}
