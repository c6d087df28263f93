package abstracts

import (
	"encoding/json"
	"net/http"
	"strings"

	"abstract-portal/database"
	"abstract-portal/internal/domain/abstracts"
	"abstract-portal/internal/metrics"
	"abstract-portal/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Handler holds the submission side of the API. The mail sender is injected
// once at startup; handlers never touch SMTP configuration themselves.
type Handler struct {
	mail   notify.Sender
	logger *zap.Logger
	policy *bluemonday.Policy
}

func NewHandler(mail notify.Sender, logger *zap.Logger) *Handler {
	return &Handler{
		mail:   mail,
		logger: logger,
		policy: bluemonday.StrictPolicy(),
	}
}

// SubmitAbstract accepts multipart (with optional PDF) or plain JSON.
// POST /api/abstracts/submit
func (h *Handler) SubmitAbstract(c *gin.Context) {
	req, err := h.parseSubmitRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if msg := req.Normalize(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	pdf, err := savePDF(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File upload error: " + err.Error()})
		return
	}

	abstract := req.ToModel()
	abstract.Status = abstracts.StatusPending
	abstract.AccessToken = abstracts.NewAccessToken()
	if pdf != nil {
		abstract.PDFFilename = pdf.Filename
		abstract.PDFPath = pdf.Path
		uploadedAt := pdf.UploadedAt
		abstract.PDFUploadedAt = &uploadedAt
	}

	if err := database.DB.Create(&abstract).Error; err != nil {
		h.logger.Error("abstract insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error submitting abstract"})
		return
	}

	metrics.SubmissionsTotal.Inc()

	// Fire-and-forget: a failed confirmation email never fails the
	// submission.
	sub := notify.Submission{
		ID:          abstract.ID,
		Title:       abstract.Title,
		Authors:     abstract.FormatAuthors(),
		Category:    abstract.Category,
		Department:  abstract.DepartmentLabel(),
		Status:      abstract.Status,
		Email:       abstract.AuthorEmail,
		AccessToken: abstract.AccessToken,
		HasPDF:      abstract.HasPDF(),
	}
	go func() {
		if err := h.mail.SendSubmissionConfirmation(sub); err != nil {
			metrics.MailFailuresTotal.Inc()
			h.logger.Warn("confirmation email not sent",
				zap.String("abstract_id", sub.ID),
				zap.Error(err),
			)
		}
	}()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Abstract submitted successfully",
		"data": gin.H{
			"id":            abstract.ID,
			"title":         abstract.Title,
			"status":        abstract.Status,
			"statusMessage": abstracts.MessageFor(abstract.Status),
			"accessToken":   abstract.AccessToken,
			"hasPDF":        abstract.HasPDF(),
			"submittedAt":   abstract.CreatedAt,
		},
	})
}

func (h *Handler) parseSubmitRequest(c *gin.Context) (*SubmitAbstractRequest, error) {
	var req SubmitAbstractRequest

	if strings.Contains(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	// Multipart path: the sanitize middleware skips non-JSON bodies, so
	// form fields are cleaned here.
	clean := func(key string) string {
		return h.policy.Sanitize(strings.TrimSpace(c.PostForm(key)))
	}
	req = SubmitAbstractRequest{
		Title:           clean("title"),
		Department:      clean("department"),
		DepartmentOther: clean("department_other"),
		Category:        clean("category"),
		AuthorFirstName: clean("author_first_name"),
		AuthorLastName:  clean("author_last_name"),
		AuthorDegree:    clean("author_degree"),
		AuthorEmail:     clean("author_email"),
		Background:      clean("background"),
		Methods:         clean("methods"),
		Results:         clean("results"),
		Conclusion:      clean("conclusion"),
		Authors:         clean("authors"),
		Email:           clean("email"),
		AbstractBody:    clean("abstract"),
	}
	req.Keywords = abstracts.SplitKeywords(clean("keywords"))

	if raw := c.PostForm("additional_authors"); raw != "" {
		var authors []AuthorInput
		if err := json.Unmarshal([]byte(raw), &authors); err == nil {
			for i := range authors {
				authors[i].FirstName = h.policy.Sanitize(authors[i].FirstName)
				authors[i].LastName = h.policy.Sanitize(authors[i].LastName)
				authors[i].Degree = h.policy.Sanitize(authors[i].Degree)
			}
			req.AdditionalAuthors = authors
		}
	}

	return &req, nil
}

// GetAbstractByToken is the magic-link lookup: the token is the only
// credential, and the returned view hides reviews, scores and the token
// itself.
// GET /api/abstracts/view/:token
func (h *Handler) GetAbstractByToken(c *gin.Context) {
	token := c.Param("token")

	var abstract abstracts.Abstract
	err := database.DB.Preload("AdditionalAuthors").
		Where("access_token = ?", token).
		First(&abstract).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Abstract not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    BuildPublicView(&abstract),
	})
}

// GetPublishedAbstracts is the public showcase: accepted and published only,
// best scores first.
// GET /api/abstracts/published
func (h *Handler) GetPublishedAbstracts(c *gin.Context) {
	var list []abstracts.Abstract
	err := database.DB.Preload("AdditionalAuthors").
		Where("status = ? AND published = ?", abstracts.StatusAccepted, true).
		Order("average_score DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching published abstracts"})
		return
	}

	items := make([]ShowcaseItem, 0, len(list))
	for i := range list {
		items = append(items, BuildShowcaseItem(&list[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// GetAllAbstracts is the lightweight admin listing, newest first, without
// review detail.
// GET /api/abstracts
func (h *Handler) GetAllAbstracts(c *gin.Context) {
	var list []abstracts.Abstract
	err := database.DB.Preload("AdditionalAuthors").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching abstracts"})
		return
	}

	items := make([]AdminListItem, 0, len(list))
	for i := range list {
		items = append(items, BuildAdminListItem(&list[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// GetAbstractByID returns the full record with resolved reviews.
// GET /api/abstracts/:id
func (h *Handler) GetAbstractByID(c *gin.Context) {
	var abstract abstracts.Abstract
	err := database.DB.Preload("AdditionalAuthors").
		Preload("Reviews.Reviewer").
		Where("id = ?", c.Param("id")).
		First(&abstract).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Abstract not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    BuildAdminView(&abstract),
	})
}
