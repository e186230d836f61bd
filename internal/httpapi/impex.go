package httpapi

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/impex"
	"taskboard/internal/repository"
)

// exportTasks handles GET /tasks/export?format=csv|json|xlsx.
// CSV and XLSX are served as dated file downloads.
func (s *Server) exportTasks(c *gin.Context) {
	tasks, err := s.tasks.ListTasks(c.Request.Context(), repository.TaskFilter{})
	if err != nil {
		writeError(c, err)
		return
	}

	now := time.Now().In(s.loc)
	stamp := now.Format("2006-01-02")

	switch c.DefaultQuery("format", "csv") {
	case "json":
		c.JSON(http.StatusOK, impex.BuildJSON(tasks, s.loc, now))

	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="tasks-%s.xlsx"`, stamp))
		if err := impex.WriteXLSX(c.Writer, tasks, s.loc); err != nil {
			writeError(c, err)
		}

	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="tasks-%s.csv"`, stamp))
		if err := impex.WriteCSV(c.Writer, tasks, s.loc); err != nil {
			writeError(c, err)
		}

	default:
		badRequest(c, "unsupported format")
	}
}

// importTasks handles POST /tasks/import. Accepts either a JSON body with a
// tasks array or a multipart upload of a CSV/XLSX file.
func (s *Server) importTasks(c *gin.Context) {
	rows, ok := s.importRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.importer.Import(c.Request.Context(), rows))
}

func (s *Server) importRows(c *gin.Context) ([]impex.RawRow, bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		header, err := c.FormFile("file")
		if err != nil {
			badRequest(c, "file is required")
			return nil, false
		}
		f, err := header.Open()
		if err != nil {
			badRequest(c, "cannot read uploaded file")
			return nil, false
		}
		defer f.Close()

		var rows []impex.RawRow
		switch strings.ToLower(filepath.Ext(header.Filename)) {
		case ".csv":
			rows, err = impex.ParseCSV(f)
		case ".xlsx":
			rows, err = impex.ParseXLSX(f)
		default:
			badRequest(c, "unsupported file type")
			return nil, false
		}
		if err != nil {
			badRequest(c, "malformed file")
			return nil, false
		}
		return rows, true
	}

	var body struct {
		Tasks []impex.RawRow `json:"tasks"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Tasks == nil {
		badRequest(c, "tasks array is required")
		return nil, false
	}
	return body.Tasks, true
}
