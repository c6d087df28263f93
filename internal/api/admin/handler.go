package admin

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"abstract-portal/config"
	"abstract-portal/database"
	abstractsapi "abstract-portal/internal/api/abstracts"
	"abstract-portal/internal/domain/abstracts"
	"abstract-portal/internal/domain/admins"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin exchanges email+password for a 7-day admin token.
// POST /api/admin/login
func AdminLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide email and password"})
		return
	}

	var admin admins.Admin
	err := database.DB.Where("email = ?", strings.ToLower(input.Email)).First(&admin).Error
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    admin.ID,
		"email": admin.Email,
		"role":  "admin",
		"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   tokenString,
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}

// CreateFirstAdmin bootstraps the very first admin account; once any admin
// exists the route is closed.
// POST /api/admin/create-first
func CreateFirstAdmin(c *gin.Context) {
	var count int64
	if err := database.DB.Model(&admins.Admin{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating admin"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin already exists. Use login instead."})
		return
	}

	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide name, email, and password"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
		return
	}

	admin := admins.Admin{
		Name:     input.Name,
		Email:    strings.ToLower(input.Email),
		Password: string(hashed),
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		fmt.Println("❌ DB Insert Error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating admin"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin created successfully. You can now login.",
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}

// GetAllAbstracts is the full admin listing with resolved reviews.
// Filters: ?status=..., ?sortBy=score|reviews (default newest first).
// GET /api/admin/abstracts
func GetAllAbstracts(c *gin.Context) {
	status := c.Query("status")
	sortBy := c.Query("sortBy")

	query := database.DB.Preload("AdditionalAuthors").Preload("Reviews.Reviewer")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	switch sortBy {
	case "score":
		query = query.Order("average_score DESC")
	case "reviews":
		query = query.
			Select("abstracts.*").
			Joins("LEFT JOIN reviews ON reviews.abstract_id = abstracts.id").
			Group("abstracts.id").
			Order("COUNT(reviews.id) DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var list []abstracts.Abstract
	if err := query.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching abstracts"})
		return
	}

	items := make([]abstractsapi.AdminAbstractView, 0, len(list))
	for i := range list {
		items = append(items, abstractsapi.BuildAdminView(&list[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

func loadAbstract(c *gin.Context) (*abstracts.Abstract, bool) {
	var abstract abstracts.Abstract
	err := database.DB.Where("id = ?", c.Param("id")).First(&abstract).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Abstract not found"})
		return nil, false
	}
	return &abstract, true
}

// AcceptAbstract moves to accepted from any status, stamping acceptedAt on
// first entry only.
// PUT /api/admin/accept/:id
func AcceptAbstract(c *gin.Context) {
	abstract, ok := loadAbstract(c)
	if !ok {
		return
	}

	abstract.Accept(time.Now())
	if err := database.DB.Model(abstract).Select("status", "accepted_at", "published").
		Updates(map[string]interface{}{
			"status":      abstract.Status,
			"accepted_at": abstract.AcceptedAt,
			"published":   abstract.Published,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error accepting abstract"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Abstract accepted",
		"data": gin.H{
			"id":            abstract.ID,
			"title":         abstract.Title,
			"status":        abstract.Status,
			"statusMessage": abstracts.MessageFor(abstract.Status),
			"acceptedAt":    abstract.AcceptedAt,
		},
	})
}

// RejectAbstract moves to rejected from any status; a published abstract
// leaves the showcase.
// PUT /api/admin/reject/:id
func RejectAbstract(c *gin.Context) {
	abstract, ok := loadAbstract(c)
	if !ok {
		return
	}

	abstract.Reject(time.Now())
	if err := database.DB.Model(abstract).Select("status", "rejected_at", "published").
		Updates(map[string]interface{}{
			"status":      abstract.Status,
			"rejected_at": abstract.RejectedAt,
			"published":   abstract.Published,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error rejecting abstract"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Abstract rejected",
		"data": gin.H{
			"id":            abstract.ID,
			"title":         abstract.Title,
			"status":        abstract.Status,
			"statusMessage": abstracts.MessageFor(abstract.Status),
			"rejectedAt":    abstract.RejectedAt,
		},
	})
}

// PublishAbstract puts an accepted abstract on the showcase; publishedAt is
// stamped once and survives unpublish/publish cycles.
// PUT /api/admin/publish/:id
func PublishAbstract(c *gin.Context) {
	abstract, ok := loadAbstract(c)
	if !ok {
		return
	}

	if err := abstract.Publish(time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Only accepted abstracts can be published"})
		return
	}
	if err := database.DB.Model(abstract).Select("published", "published_at").
		Updates(map[string]interface{}{
			"published":    abstract.Published,
			"published_at": abstract.PublishedAt,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error publishing abstract"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Abstract published to showcase",
		"data": gin.H{
			"id":          abstract.ID,
			"title":       abstract.Title,
			"published":   abstract.Published,
			"publishedAt": abstract.PublishedAt,
		},
	})
}

// UnpublishAbstract pulls an abstract from the showcase without touching its
// status.
// PUT /api/admin/unpublish/:id
func UnpublishAbstract(c *gin.Context) {
	abstract, ok := loadAbstract(c)
	if !ok {
		return
	}

	abstract.Unpublish()
	if err := database.DB.Model(abstract).Update("published", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error unpublishing abstract"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Abstract unpublished from showcase",
		"data": gin.H{
			"id":        abstract.ID,
			"title":     abstract.Title,
			"published": abstract.Published,
		},
	})
}

// GetDashboardStats aggregates per-status counts plus the mean of
// per-abstract averages over abstracts that have at least one review.
// GET /api/admin/stats
func GetDashboardStats(c *gin.Context) {
	var total, pending, underReview, accepted, rejected, published int64

	database.DB.Model(&abstracts.Abstract{}).Count(&total)
	database.DB.Model(&abstracts.Abstract{}).Where("status = ?", abstracts.StatusPending).Count(&pending)
	database.DB.Model(&abstracts.Abstract{}).Where("status = ?", abstracts.StatusUnderReview).Count(&underReview)
	database.DB.Model(&abstracts.Abstract{}).Where("status = ?", abstracts.StatusAccepted).Count(&accepted)
	database.DB.Model(&abstracts.Abstract{}).Where("status = ?", abstracts.StatusRejected).Count(&rejected)
	database.DB.Model(&abstracts.Abstract{}).Where("published = ?", true).Count(&published)

	var avgScore float64
	database.DB.Model(&abstracts.Abstract{}).
		Where("id IN (?)", database.DB.Model(&abstracts.Review{}).Select("abstract_id")).
		Select("COALESCE(AVG(average_score), 0)").
		Scan(&avgScore)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalAbstracts": total,
			"pending":        pending,
			"underReview":    underReview,
			"accepted":       accepted,
			"rejected":       rejected,
			"published":      published,
			"averageScore":   fmt.Sprintf("%.2f", avgScore),
		},
	})
}
