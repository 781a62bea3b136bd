package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard/internal/store"
)

const changeBuffer = 16

type EventsHandler struct {
	tasks TaskService
	log   logrus.FieldLogger
}

func NewEventsHandler(tasks TaskService, log logrus.FieldLogger) *EventsHandler {
	return &EventsHandler{tasks: tasks, log: log}
}

// Stream отправляет изменения задач как Server-Sent Events
// @Summary Stream task changes
// @Tags Tasks
// @Produce text/event-stream
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	changes := make(chan store.Change, changeBuffer)
	unsubscribe := h.tasks.Subscribe(func(ch store.Change) {
		select {
		case changes <- ch:
		default:
			h.log.WithField("task_id", ch.Task.ID).Warn("event subscriber is slow, dropping change")
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ch := <-changes:
			c.SSEvent(string(ch.Kind), ch)
			return true
		}
	})
}
