package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard/internal/board"
	"taskboard/internal/model"
)

// Mover applies a finished drag gesture.
type Mover interface {
	Move(ctx context.Context, ev board.DropEvent) (board.Result, error)
}

type BoardHandler struct {
	tasks TaskService
	mover Mover
	log   logrus.FieldLogger
}

func NewBoardHandler(tasks TaskService, mover Mover, log logrus.FieldLogger) *BoardHandler {
	return &BoardHandler{tasks: tasks, mover: mover, log: log}
}

// BoardResponse lists the columns in display order
type BoardResponse struct {
	Columns []board.Column `json:"columns"`
}

// GetBoard возвращает задачи, разложенные по колонкам статусов
// @Summary Kanban columns
// @Tags Board
// @Success 200 {object} BoardResponse
// @Router /board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	buckets := board.Partition(h.tasks.List())
	c.JSON(http.StatusOK, BoardResponse{Columns: buckets.Columns()})
}

// MoveTask переносит карточку между колонками
// @Summary Apply a drag-and-drop gesture
// @Tags Board
// @Param event body board.DropEvent true "Source and destination"
// @Success 200 {object} board.Result
// @Router /board/move [post]
func (h *BoardHandler) MoveTask(c *gin.Context) {
	var ev board.DropEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	res, err := h.mover.Move(c.Request.Context(), ev)
	if err != nil {
		h.log.WithError(err).WithField("source", ev.Source).Warn("move failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// optionsResponse lets the front end build its selects.
type optionsResponse struct {
	Statuses   []model.Status   `json:"statuses"`
	Priorities []model.Priority `json:"priorities"`
}

// Options возвращает допустимые значения статуса и приоритета
// @Summary Allowed status and priority values
// @Tags Board
// @Router /options [get]
func (h *BoardHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, optionsResponse{Statuses: model.Statuses, Priorities: model.Priorities})
}
