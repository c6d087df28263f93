package admin

import (
	"fmt"
	"net/http"
	"time"

	"abstract-portal/database"
	"abstract-portal/internal/domain/abstracts"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportAbstracts downloads the full listing as a spreadsheet. Access tokens
// are not part of the export.
// GET /api/admin/export
func ExportAbstracts(c *gin.Context) {
	var list []abstracts.Abstract
	err := database.DB.Preload("AdditionalAuthors").Preload("Reviews").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching abstracts"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Abstracts"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"ID", "Title", "Authors", "Email", "Department", "Category",
		"Keywords", "Status", "Reviews", "Average Score", "Published",
		"Submitted At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, a := range list {
		published := "no"
		if a.Published {
			published = "yes"
		}
		values := []interface{}{
			a.ID,
			a.Title,
			a.FormatAuthors(),
			a.AuthorEmail,
			a.DepartmentLabel(),
			a.Category,
			a.Keywords,
			a.Status,
			len(a.Reviews),
			a.AverageScore,
			published,
			a.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error generating export"})
		return
	}

	filename := fmt.Sprintf("abstracts-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
