package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/board"
	"taskboard/internal/model"
	"taskboard/internal/query"
	"taskboard/internal/store"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string             `json:"error"`
	Fields []model.FieldError `json:"fields,omitempty"`
}

// writeError maps domain errors to HTTP statuses.
func writeError(c *gin.Context, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task", Fields: verr.Fields()})
	case errors.Is(err, store.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
	case errors.Is(err, query.ErrUnknownSortKey):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown sort key"})
	case errors.Is(err, board.ErrUnknownBucket):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown column"})
	case errors.Is(err, store.ErrPersist):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save tasks"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}
