package abstracts

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"abstract-portal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxPDFSize = 10 << 20 // 10MB

type SavedPDF struct {
	Filename   string
	Path       string
	UploadedAt time.Time
}

// savePDF persists the optional "pdfFile" part under the upload root with a
// unique timestamped name. Returns nil with no error when the part is
// absent.
func savePDF(c *gin.Context) (*SavedPDF, error) {
	file, err := c.FormFile("pdfFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	if file.Size > maxPDFSize {
		return nil, errors.New("file too large, maximum size is 10MB")
	}
	if !isPDF(file) {
		return nil, errors.New("only PDF files are allowed")
	}

	if err := os.MkdirAll(config.UPLOAD_DIR, 0o755); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("abstract-%d-%s.pdf", time.Now().Unix(), uuid.NewString())
	dst := filepath.Join(config.UPLOAD_DIR, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return nil, err
	}

	return &SavedPDF{
		Filename:   filename,
		Path:       filepath.ToSlash(dst),
		UploadedAt: time.Now(),
	}, nil
}

func isPDF(file *multipart.FileHeader) bool {
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return false
	}
	ct := file.Header.Get("Content-Type")
	return ct == "" || strings.Contains(ct, "application/pdf")
}
