package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/form"
	"taskboard/internal/model"
	"taskboard/internal/query"
	"taskboard/internal/store"
)

// TaskService is the task store as seen by the HTTP layer.
type TaskService interface {
	List() []model.Task
	Get(id string) (model.Task, error)
	Create(ctx context.Context, draft model.TaskDraft) (model.Task, error)
	Update(ctx context.Context, task model.Task) error
	Delete(ctx context.Context, id string) error
	Subscribe(l store.Listener) (unsubscribe func())
}

type TaskHandler struct {
	tasks TaskService
}

func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// TaskFormResponse отдаёт задачу вместе с заполненной формой редактирования
type TaskFormResponse struct {
	Task model.Task `json:"task"`
	Form form.Input `json:"form"`
}

// List возвращает отфильтрованные и отсортированные задачи
// @Summary List tasks
// @Tags Tasks
// @Param status query string false "To Do | In Progress | Completed | All"
// @Param priority query string false "Low | Medium | High | All"
// @Param sort query string false "dueDate | status | priority"
// @Success 200 {array} model.Task
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	criteria, err := query.ParseCriteria(c.Query("status"), c.Query("priority"))
	if err != nil {
		writeError(c, err)
		return
	}
	key, err := query.ParseSortKey(c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}

	// Фильтрация всегда выполняется до сортировки
	tasks, err := query.Apply(h.tasks.List(), criteria, key)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetByID получает задачу по ID
// @Summary Get a task with its edit form
// @Tags Tasks
// @Success 200 {object} TaskFormResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.tasks.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, TaskFormResponse{Task: task, Form: form.FromTask(task)})
}

// Create создает новую задачу
// @Summary Create a task
// @Tags Tasks
// @Param task body form.Input true "Task form"
// @Success 201 {object} model.Task
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var in form.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	draft, err := in.Draft()
	if err != nil {
		writeError(c, err)
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update полностью заменяет задачу
// @Summary Replace a task
// @Tags Tasks
// @Param task body form.Input true "Task form"
// @Success 200 {object} model.Task
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	var in form.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	draft, err := in.Draft()
	if err != nil {
		writeError(c, err)
		return
	}

	task := draft.WithID(c.Param("id"))
	if err := h.tasks.Update(c.Request.Context(), task); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete удаляет задачу; удаление несуществующей задачи не ошибка
// @Summary Delete a task
// @Tags Tasks
// @Success 204
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
