package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/internal/suggest"
)

type suggestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// generateDescription handles POST /ai/generate-description.
func (s *Server) generateDescription(c *gin.Context) {
	var req suggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		badRequest(c, "title is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"description": suggest.GenerateDescription(strings.TrimSpace(req.Title)),
	})
}

// suggestCategory handles POST /ai/suggest-category. The suggestion may
// reference an existing category or describe a new one (isNew).
func (s *Server) suggestCategory(c *gin.Context) {
	var req suggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		badRequest(c, "title is required")
		return
	}

	categories, err := s.categories.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}

	suggestion := suggest.SuggestCategory(strings.TrimSpace(req.Title), strings.TrimSpace(req.Description), categories)
	c.JSON(http.StatusOK, gin.H{
		"suggestedCategory":   suggestion,
		"availableCategories": categories,
	})
}
