package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CategoryID  *string    `json:"categoryId"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

// listTasks handles GET /tasks. All filter parameters are optional and
// combined with AND; an empty parameter adds no constraint.
func (s *Server) listTasks(c *gin.Context) {
	var filter repository.TaskFilter

	if v, ok := c.GetQuery("completed"); ok && v != "" {
		completed := v == "true"
		filter.Completed = &completed
	}
	filter.CategoryID = c.Query("categoryId")
	filter.Priority = model.Priority(c.Query("priority"))
	filter.Search = c.Query("search")

	tasks, err := s.tasks.ListTasks(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Priority:    model.Priority(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) getTask(c *gin.Context) {
	task, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) updateTask(c *gin.Context) {
	var update service.TaskUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	task, err := s.tasks.UpdateTask(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c *gin.Context) {
	if err := s.tasks.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
