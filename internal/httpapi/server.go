// Package httpapi exposes the task board over a JSON HTTP API.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/service"
)

// Server wires route handlers to the underlying services.
type Server struct {
	tasks      *service.TaskService
	categories *service.CategoryService
	stats      *service.StatsService
	importer   *service.ImportService
	loc        *time.Location
}

func NewServer(tasks *service.TaskService, categories *service.CategoryService, stats *service.StatsService, importer *service.ImportService, loc *time.Location) *Server {
	if loc == nil {
		loc = time.Local
	}
	return &Server{tasks: tasks, categories: categories, stats: stats, importer: importer, loc: loc}
}

// Routes builds the gin engine with all API routes registered.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", s.health)

	tasks := r.Group("/tasks")
	tasks.GET("", s.listTasks)
	tasks.POST("", s.createTask)
	tasks.GET("/export", s.exportTasks)
	tasks.POST("/import", s.importTasks)
	tasks.GET("/:id", s.getTask)
	tasks.PUT("/:id", s.updateTask)
	tasks.DELETE("/:id", s.deleteTask)

	categories := r.Group("/categories")
	categories.GET("", s.listCategories)
	categories.POST("", s.createCategory)
	categories.PUT("/:id", s.updateCategory)
	categories.DELETE("/:id", s.deleteCategory)

	r.GET("/stats", s.getStats)

	ai := r.Group("/ai")
	ai.POST("/generate-description", s.generateDescription)
	ai.POST("/suggest-category", s.suggestCategory)

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
