package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps service errors onto HTTP statuses. Unexpected errors are
// logged and surfaced as a generic 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrInvalidPriority),
		errors.Is(err, service.ErrCategoryNotFound):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrCategoryHasTasks):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}
