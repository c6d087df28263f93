package routes

import (
	"time"

	abstractsapi "abstract-portal/internal/api/abstracts"
	adminapi "abstract-portal/internal/api/admin"
	reviewersapi "abstract-portal/internal/api/reviewers"
	"abstract-portal/internal/app/http/middleware"
	"abstract-portal/internal/cache"
	"abstract-portal/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, mail notify.Sender, rdb *cache.Client, logger *zap.Logger) {
	abstractsHandler := abstractsapi.NewHandler(mail, logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	// Public submission side
	abstracts := api.Group("/abstracts")
	abstracts.POST("/submit",
		middleware.RateLimit(rdb, 10, time.Minute),
		abstractsHandler.SubmitAbstract,
	)
	abstracts.GET("/view/:token", abstractsHandler.GetAbstractByToken)
	abstracts.GET("/published", abstractsHandler.GetPublishedAbstracts)

	// Admin-gated reads on the same controller
	abstracts.GET("",
		middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleAdmin),
		abstractsHandler.GetAllAbstracts,
	)
	abstracts.GET("/:id",
		middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleAdmin),
		abstractsHandler.GetAbstractByID,
	)

	// Admin
	admin := api.Group("/admin")
	admin.POST("/login", adminapi.AdminLogin)
	admin.POST("/create-first", adminapi.CreateFirstAdmin)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleAdmin))
	adminAuth.GET("/abstracts", adminapi.GetAllAbstracts)
	adminAuth.GET("/stats", adminapi.GetDashboardStats)
	adminAuth.GET("/export", adminapi.ExportAbstracts)
	adminAuth.PUT("/accept/:id", adminapi.AcceptAbstract)
	adminAuth.PUT("/reject/:id", adminapi.RejectAbstract)
	adminAuth.PUT("/publish/:id", adminapi.PublishAbstract)
	adminAuth.PUT("/unpublish/:id", adminapi.UnpublishAbstract)

	// Reviewers
	reviewers := api.Group("/reviewers")
	reviewers.POST("/login", reviewersapi.ReviewerLogin)

	reviewerAuth := reviewers.Group("")
	reviewerAuth.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleReviewer))
	reviewerAuth.GET("/abstracts", reviewersapi.GetAbstractsForReview)
	reviewerAuth.POST("/review/:id", reviewersapi.SubmitReview)
	reviewerAuth.GET("/my-reviews", reviewersapi.GetMyReviews)
}
